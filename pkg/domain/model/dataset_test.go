package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
)

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "plain file URL",
			url:  "http://mock.com/mock.data",
			want: "mock.data",
		},
		{
			name: "nested path",
			url:  "http://yann.lecun.com/exdb/mnist/train-images-idx3-ubyte.gz",
			want: "train-images-idx3-ubyte.gz",
		},
		{
			name: "query string ignored",
			url:  "https://example.com/files/data.tar.gz?token=abc",
			want: "data.tar.gz",
		},
		{
			name:    "trailing slash has no segment",
			url:     "http://mock.com/",
			wantErr: true,
		},
		{
			name:    "bare host has no segment",
			url:     "http://mock.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.FilenameFromURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilenameFromURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, types.ErrNoFilename) {
					t.Errorf("error = %v, want ErrNoFilename", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("FilenameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
