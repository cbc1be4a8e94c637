package main

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/pkg/sink"
)

func renderCmd() *cobra.Command {
	var manifestPath, outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page manifest to HTML",
		Long: `Render builds the document described by a YAML page manifest and
writes the HTML to the output destination. The destination is a
filesystem path, or an S3 object when given as s3://bucket/key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			doc, err := m.Document()
			if err != nil {
				return err
			}
			html := doc.Render()

			dest, out, err := resolveSink(ctx, outPath)
			if err != nil {
				return err
			}
			if err := out.Write(ctx, dest, html); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"manifest": manifestPath,
				"out":      outPath,
				"bytes":    len(html),
			}).Info("document written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "f", "page.yaml", "page manifest file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "index.html", "output path or s3://bucket/key")

	return cmd
}

// resolveSink picks the sink for an output destination. s3://bucket/key
// destinations use the default AWS credential chain; anything else is a
// filesystem path.
func resolveSink(ctx context.Context, out string) (string, sink.Sink, error) {
	if !strings.HasPrefix(out, "s3://") {
		return out, sink.NewFile(), nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(out, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return "", nil, fmt.Errorf("invalid S3 destination %q, want s3://bucket/key", out)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", nil, errors.Wrap(err, "load AWS config")
	}
	return key, sink.NewS3(s3.NewFromConfig(awsCfg), bucket), nil
}
