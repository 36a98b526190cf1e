package content

import (
	"context"
	"sync"

	"github.com/illikainen/scaffold/src/configs"
	"github.com/illikainen/scaffold/src/structure"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Fetcher interface {
	Fetch(ctx context.Context, value string) ([]byte, error)
}

type Options struct {
	Config  *configs.Config
	BaseDir string
}

// Resolver turns a content descriptor into the bytes written to a newly
// created file.  Everything except raw content is cached for the lifetime
// of the resolver.
type Resolver struct {
	config *configs.Config
	cache  *lru.Cache[string, []byte]
	file   *FileFetcher
	url    *URLFetcher
	s3     *S3Fetcher
	s3Err  error
	s3Once sync.Once
}

func NewResolver(opts *Options) (*Resolver, error) {
	cache, err := lru.New[string, []byte](opts.Config.CacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Resolver{
		config: opts.Config,
		cache:  cache,
		file:   NewFileFetcher(opts.BaseDir),
		url:    NewURLFetcher(opts.Config.FetchTimeout),
	}, nil
}

// Resolve returns the content and whether the descriptor produced any.
// Unknown sources produce nothing unless the configuration is strict.
func (r *Resolver) Resolve(ctx context.Context, desc *structure.Content) ([]byte, bool, error) {
	if desc == nil {
		return nil, false, nil
	}

	switch desc.Source {
	case structure.SourceRaw:
		return []byte(desc.Value), true, nil
	case structure.SourceUnknown:
		if r.config.Strict {
			return nil, false, &structure.ConfigurationError{
				Path:   desc.Value,
				Reason: "unrecognized content source",
			}
		}
		log.Warnf("%s: unrecognized content source; no content written", desc.Value)
		return nil, false, nil
	}

	key := desc.Source.String() + ":" + desc.Value
	if data, ok := r.cache.Get(key); ok {
		log.Tracef("%s: cached", key)
		return data, true, nil
	}

	fetcher, err := r.fetcher(desc.Source)
	if err != nil {
		return nil, false, err
	}

	log.Debugf("%s: fetching", key)
	data, err := fetcher.Fetch(ctx, desc.Value)
	if err != nil {
		return nil, false, err
	}

	r.cache.Add(key, data)
	return data, true, nil
}

func (r *Resolver) fetcher(source structure.Source) (Fetcher, error) {
	switch source {
	case structure.SourceFile:
		return r.file, nil
	case structure.SourceURL:
		return r.url, nil
	case structure.SourceS3:
		// Constructed on first use so that a missing s3 block only matters
		// to documents that reference S3.
		r.s3Once.Do(func() {
			r.s3, r.s3Err = NewS3Fetcher(r.config.S3)
		})
		if r.s3Err != nil {
			return nil, r.s3Err
		}
		return r.s3, nil
	}
	return nil, errors.Errorf("%s is not a valid content source", source)
}
