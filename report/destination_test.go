package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.txt")

	w, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, Write(w, Measure(Default())))
	require.NoError(t, w.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Circle Area: 78.53981633974483\n" +
		"Circle Perimeter: 31.41592653589793\n" +
		"Rectangle Area: 28.0\n" +
		"Rectangle Perimeter: 22.0\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("file contents mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenRejects(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"empty":          "",
		"directory":      t.TempDir(),
		"missing parent": filepath.Join(t.TempDir(), "nope", "shapes.txt"),
		"gs no object":   "gs://bucket",
		"gs no bucket":   "gs:///object",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			w, err := Open(ctx, path)
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

func TestParseGS(t *testing.T) {
	cases := []struct {
		in             string
		bucket, object string
		ok             bool
	}{
		{"gs://bucket/shapes.txt", "bucket", "shapes.txt", true},
		{"gs://bucket/a/b/shapes.txt", "bucket", "a/b/shapes.txt", true},
		{"gs://bucket", "bucket", "", true},
		{"/tmp/shapes.txt", "", "", false},
		{"shapes.txt", "", "", false},
		{"s3://bucket/shapes.txt", "", "", false},
	}
	for _, tc := range cases {
		bucket, object, ok := parseGS(tc.in)
		assert.Equal(t, tc.bucket, bucket, tc.in)
		assert.Equal(t, tc.object, object, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}
