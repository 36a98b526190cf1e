package configs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/illikainen/scaffold/src/utils"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
)

const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultCacheSize    = 128
)

type S3Config struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	UseSSL    *bool  `json:"use_ssl"`
}

type Config struct {
	Body            hcl.Body      `json:"-"`
	DefaultFileMode os.FileMode   `json:"default_file_mode"`
	DefaultDirMode  os.FileMode   `json:"default_dir_mode"`
	FetchTimeout    time.Duration `json:"-"`
	Timeout         string        `json:"fetch_timeout"`
	CacheSize       int           `json:"cache_size"`
	Strict          bool          `json:"strict"`
	Structure       string        `json:"structure"`
	S3              *S3Config     `json:"s3"`
	DryRun          bool          `json:"-"`
	Path            string        `json:"-"`
}

type Options struct {
	Path         string
	AllowMissing bool
}

func Load(opts *Options) (*Config, error) {
	c := &Config{Path: opts.Path}

	dir := filepath.Dir(opts.Path)
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	_, err = os.Stat(opts.Path)
	if err != nil {
		if !opts.AllowMissing || !errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(err)
		}
		log.Debugf("%s does not exist; using defaults", opts.Path)
	} else {
		log.Debugf("decoding %s", opts.Path)

		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(opts.Path)
		if diags.HasErrors() {
			return nil, diags
		}
		c.Body = file.Body
	}

	err = c.Decode(envContext)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Decode(ctxfn func() (*hcl.EvalContext, error)) error {
	var ctx *hcl.EvalContext

	if ctxfn != nil {
		var err error
		ctx, err = ctxfn()
		if err != nil {
			return err
		}
	}

	if c.Body != nil {
		value, diags := hcldec.Decode(
			c.Body,
			&hcldec.ObjectSpec{
				"default_file_mode": &hcldec.AttrSpec{
					Name: "default_file_mode",
					Type: cty.Number,
				},
				"default_dir_mode": &hcldec.AttrSpec{
					Name: "default_dir_mode",
					Type: cty.Number,
				},
				"fetch_timeout": &hcldec.AttrSpec{
					Name: "fetch_timeout",
					Type: cty.String,
				},
				"cache_size": &hcldec.AttrSpec{
					Name: "cache_size",
					Type: cty.Number,
				},
				"strict": &hcldec.AttrSpec{
					Name: "strict",
					Type: cty.Bool,
				},
				"structure": &hcldec.AttrSpec{
					Name: "structure",
					Type: cty.String,
				},
				"s3": &hcldec.BlockSpec{
					TypeName: "s3",
					Nested: &hcldec.ObjectSpec{
						"endpoint": &hcldec.AttrSpec{
							Name:     "endpoint",
							Type:     cty.String,
							Required: true,
						},
						"region": &hcldec.AttrSpec{
							Name: "region",
							Type: cty.String,
						},
						"access_key": &hcldec.AttrSpec{
							Name: "access_key",
							Type: cty.String,
						},
						"secret_key": &hcldec.AttrSpec{
							Name: "secret_key",
							Type: cty.String,
						},
						"use_ssl": &hcldec.AttrSpec{
							Name: "use_ssl",
							Type: cty.Bool,
						},
					},
				},
			},
			ctx,
		)
		if diags.HasErrors() {
			return diags
		}

		body, ok := c.Body.(*hclsyntax.Body)
		if !ok {
			return errors.Errorf("invalid body type")
		}
		c.Path = body.SrcRange.Filename

		err := utils.FromCtyValue(value, c)
		if err != nil {
			return err
		}

		if c.Structure != "" && !filepath.IsAbs(c.Structure) {
			c.Structure, err = utils.JoinPath(body, c.Structure)
			if err != nil {
				return err
			}
		}
	}

	if int(c.DefaultFileMode) == 0 {
		c.DefaultFileMode = 0644
	}
	log.Debugf("default file mode: %s", c.DefaultFileMode)

	if int(c.DefaultDirMode) == 0 {
		c.DefaultDirMode = 0755
	}
	log.Debugf("default dir mode: %s", c.DefaultDirMode)

	c.FetchTimeout = DefaultFetchTimeout
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return errors.WithStack(err)
		}
		if timeout <= 0 {
			return errors.Errorf("fetch_timeout must be positive")
		}
		c.FetchTimeout = timeout
	}
	log.Debugf("fetch timeout: %s", c.FetchTimeout)

	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}

	if c.S3 != nil {
		if c.S3.Region == "" {
			c.S3.Region = "us-east-1"
		}
		if c.S3.UseSSL == nil {
			secure := true
			c.S3.UseSSL = &secure
		}
	}

	return nil
}

func envContext() (*hcl.EvalContext, error) {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && key != "" {
			env[key] = cty.StringVal(value)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}, nil
}
