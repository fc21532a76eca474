package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableside/config"
)

func TestObjectKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"
	cfg.External.S3.BucketName = "tableside"

	svc := &s3Impl{cfg: cfg}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{name: "public domain", url: "https://cdn.example.com/table/abc.jpg", wantKey: "table/abc.jpg", wantOK: true},
		{name: "path style endpoint", url: "https://s3.example.com/tableside/table/abc.jpg", wantKey: "table/abc.jpg", wantOK: true},
		{name: "other host", url: "https://elsewhere.example.com/table/abc.jpg"},
		{name: "bare domain", url: "https://cdn.example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := svc.ObjectKey(tt.url)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
