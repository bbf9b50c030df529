package report

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/charlieparkes/shapes/app"
)

// Open returns a writer for path. A gs://bucket/object path is written to
// Google Cloud Storage; anything else is created on local disk. The caller
// must Close the writer, which is when a storage upload is committed.
func Open(ctx context.Context, path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, errors.New("empty destination path")
	}

	if bucket, object, ok := parseGS(path); ok {
		if bucket == "" || object == "" {
			return nil, errors.Errorf("%s: want gs://bucket/object", path)
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "creating storage client")
		}
		app.Log.Info("writing to google storage", zap.String("bucket", bucket), zap.String("object", object))
		return &objectWriter{
			Writer: client.Bucket(bucket).Object(object).NewWriter(ctx),
			client: client,
		}, nil
	}

	dir, err := isDir(path)
	if err == nil && dir {
		return nil, errors.Errorf("%s is a directory", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	app.Log.Info("writing to disk", zap.String("path", path))
	return f, nil
}

// parseGS reports whether path is a gs:// url and splits it into bucket and
// object name.
func parseGS(path string) (bucket, object string, ok bool) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "gs" {
		return "", "", false
	}
	return u.Host, strings.TrimLeft(u.Path, "/"), true
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), err
}

type objectWriter struct {
	*storage.Writer
	client *storage.Client
}

func (w *objectWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, "closing storage object")
}
