package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityinfo/internal/config"
)

func TestNewClient_Validation(t *testing.T) {
	valid := config.MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "cityinfo",
	}

	tests := []struct {
		name    string
		mutate  func(c *config.MinIOConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.MinIOConfig) {}},
		{name: "missing endpoint", mutate: func(c *config.MinIOConfig) { c.Endpoint = "" }, wantErr: "endpoint is required"},
		{name: "missing access key", mutate: func(c *config.MinIOConfig) { c.AccessKey = "" }, wantErr: "credentials are required"},
		{name: "missing secret key", mutate: func(c *config.MinIOConfig) { c.SecretKey = "" }, wantErr: "credentials are required"},
		{name: "missing bucket", mutate: func(c *config.MinIOConfig) { c.Bucket = "" }, wantErr: "bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			cli, err := newClient(cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, cli)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, cli)
		})
	}
}

// fakeS3 answers HEAD bucket requests: 200 for known buckets, 404 otherwise.
func fakeS3(t *testing.T, known string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		if strings.Trim(r.URL.Path, "/") == known {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func bucketFor(t *testing.T, srv *httptest.Server, bucket string) *minioBucket {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	cli, err := newClient(config.MinIOConfig{
		Endpoint:  u.Host,
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    bucket,
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	return &minioBucket{client: cli, bucket: bucket}
}

func TestMinioBucket_Ping(t *testing.T) {
	srv := fakeS3(t, "cityinfo")
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		b := bucketFor(t, srv, "cityinfo")
		assert.Equal(t, "cityinfo", b.Name())
		assert.NoError(t, b.Ping(ctx))
	})

	t.Run("bucket missing", func(t *testing.T) {
		b := bucketFor(t, srv, "gone")
		err := b.Ping(ctx)
		assert.ErrorIs(t, err, ErrBucketMissing)
	})
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	b, err := NewMinIO(context.Background(), config.MinIOConfig{})
	assert.Error(t, err)
	assert.Nil(t, b)
}
