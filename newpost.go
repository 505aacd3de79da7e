// Package newpost scaffolds blog posts for a static site.
//
// A post is a directory under the site's posts directory holding an index
// template (title, canonical URL, include of the content file) and an empty
// content file for the author to fill in. The Scaffolder never overwrites:
// an existing post directory is reported as ErrPostExists.
package newpost

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Request describes the post to scaffold. Slug is required; an empty Title
// is derived from the slug with ToTitle.
type Request struct {
	Slug  string
	Title string

	// Meta fields, rendered by the meta layout only.
	Description string
	Keywords    string
	Date        string
	Tags        []string
}

// Scaffolder creates post directories under Config.Root/Config.PostsDir.
type Scaffolder struct {
	Config SiteConfig

	fs  afero.Fs
	log *slog.Logger
}

// New creates a Scaffolder with the given configuration.
func New(cfg SiteConfig, opts ...Option) *Scaffolder {
	cfg.setDefaults()

	s := &Scaffolder{
		Config: cfg,
		fs:     afero.NewOsFs(),
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// PostsRoot returns the absolute directory new posts are created in.
func (s *Scaffolder) PostsRoot() (string, error) {
	root, err := filepath.Abs(s.Config.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", s.Config.Root, err)
	}
	return filepath.Join(root, filepath.FromSlash(s.Config.PostsDir)), nil
}

// Create makes the post directory, then writes the index document and the
// empty content document, in that order. It stops at the first failure and
// leaves whatever was already created on disk.
func (s *Scaffolder) Create(ctx context.Context, req Request) (Post, error) {
	if err := ValidateSlug(req.Slug); err != nil {
		return Post{}, err
	}
	if norm := Slugify(req.Slug); norm != req.Slug {
		s.log.WarnContext(ctx, "slug is not normalized", "slug", req.Slug, "suggested", norm)
	}

	root, err := s.PostsRoot()
	if err != nil {
		return Post{}, err
	}
	info, err := s.fs.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Post{}, fmt.Errorf("%w: %s", ErrPostsRootMissing, root)
	case err != nil:
		return Post{}, fmt.Errorf("stat %s: %w", root, err)
	case !info.IsDir():
		return Post{}, fmt.Errorf("%w: %s is not a directory", ErrPostsRootMissing, root)
	}

	title := req.Title
	if title == "" {
		title = ToTitle(req.Slug)
	}
	dir := filepath.Join(root, req.Slug)
	post := Post{
		Slug:         req.Slug,
		Title:        title,
		CanonicalURL: CanonicalURL(s.Config.URL, req.Slug),
		Dir:          dir,
		IndexPath:    filepath.Join(dir, s.Config.IndexFile),
		ContentPath:  filepath.Join(dir, s.Config.ContentFile),
	}

	// A template error must leave nothing on disk.
	index, err := RenderIndex(s.Config.Layout, IndexData{
		Title:        post.Title,
		CanonicalURL: post.CanonicalURL,
		ContentFile:  s.Config.ContentFile,
		Description:  req.Description,
		Keywords:     req.Keywords,
		Date:         req.Date,
		Tags:         FilterEmpty(req.Tags),
	})
	if err != nil {
		return Post{}, err
	}

	if _, err := s.fs.Stat(dir); err == nil {
		return Post{}, fmt.Errorf("%w: %s", ErrPostExists, dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Post{}, fmt.Errorf("stat %s: %w", dir, err)
	}

	var created []string
	if err := s.fs.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = fmt.Errorf("%w: %w", ErrPostExists, err)
		}
		return Post{}, &StepError{Step: StepMkdir, Path: dir, Err: err}
	}
	created = append(created, dir)
	s.log.DebugContext(ctx, "created directory", "path", dir)

	if err := s.writeNew(post.IndexPath, []byte(index)); err != nil {
		return Post{}, &StepError{Step: StepWriteIndex, Path: post.IndexPath, Created: created, Err: err}
	}
	created = append(created, post.IndexPath)
	s.log.DebugContext(ctx, "wrote index", "path", post.IndexPath, "layout", s.Config.Layout)

	if err := s.writeNew(post.ContentPath, nil); err != nil {
		return Post{}, &StepError{Step: StepWriteContent, Path: post.ContentPath, Created: created, Err: err}
	}
	s.log.DebugContext(ctx, "wrote content", "path", post.ContentPath)

	return post, nil
}

// writeNew creates name exclusively and writes data to it.
func (s *Scaffolder) writeNew(name string, data []byte) error {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
