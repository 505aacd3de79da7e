package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/newpost"
)

func newRootCmd(version string) *cobra.Command {
	v := viper.New()
	var req newpost.Request

	cmd := &cobra.Command{
		Use:   "newpost <slug> [title]",
		Short: "Scaffold a new blog post",
		Long: `newpost creates <root>/src/posts/<slug>/ containing an index template and an
empty content file. The title is derived from the slug ("my-first-post"
becomes "My First Post") unless given as the second argument.`,
		Example: `  newpost my-first-post
  newpost go-generics "Go Generics, Explained"
  newpost --layout meta --tags go,web --date 2026-10-19 release-notes`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
			logger.Debug("arguments", "argv", os.Args)

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			req.Slug = args[0]
			if len(args) > 1 {
				req.Title = args[1]
			}
			s := newpost.New(cfg, newpost.WithLogger(logger))
			return runNew(cmd.Context(), cmd.OutOrStdout(), s, req)
		},
	}
	cmd.Version = version
	cmd.SetVersionTemplate("newpost {{.Version}}\n")

	if err := bindConfig(cmd, v); err != nil {
		panic(err)
	}
	f := cmd.Flags()
	f.StringVar(&req.Description, "description", "", "Description (meta layout)")
	f.StringVar(&req.Keywords, "keywords", "", "Keywords (meta layout)")
	f.StringVar(&req.Date, "date", "", "Publication date (meta layout)")
	f.StringSliceVar(&req.Tags, "tags", nil, "Comma-separated tags (meta layout)")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newConfigCmd(v))
	return cmd
}

func runNew(ctx context.Context, w io.Writer, s *newpost.Scaffolder, req newpost.Request) error {
	post, err := s.Create(ctx, req)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(s.Config.Root)
	if err != nil {
		root = s.Config.Root
	}
	rel := func(p string) string {
		if r, err := filepath.Rel(root, p); err == nil {
			return r
		}
		return p
	}

	fmt.Fprintf(w, "Creating new post: %s\n\n", post.Title)
	fmt.Fprintf(w, "  created %s\n", rel(post.Dir))
	fmt.Fprintf(w, "  created %s\n", rel(post.IndexPath))
	fmt.Fprintf(w, "  created %s\n", rel(post.ContentPath))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Canonical URL: %s\n", post.CanonicalURL)
	fmt.Fprintf(w, "Write the post in %s.\n", rel(post.ContentPath))
	return nil
}
