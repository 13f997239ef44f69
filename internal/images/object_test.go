package images

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    []byte
	headErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	fake := &fakeS3{}
	store := newS3Store(fake, S3Config{Bucket: "media", ACL: "public-read", PublicBaseURL: "https://cdn.example.com/"})

	require.NoError(t, store.Put(context.Background(), "m/c/page-001.png", pngBytes, "image/png"))

	assert.Equal(t, "media", aws.ToString(fake.put.Bucket))
	assert.Equal(t, "m/c/page-001.png", aws.ToString(fake.put.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.put.ContentType))
	assert.Equal(t, types.ObjectCannedACLPublicRead, fake.put.ACL)
	assert.Equal(t, pngBytes, fake.body)
	assert.Equal(t, "https://cdn.example.com/m/c/page-001.png", store.URL("m/c/page-001.png"))
}

func TestS3Store_Exists(t *testing.T) {
	fake := &fakeS3{}
	store := newS3Store(fake, S3Config{Bucket: "media", Endpoint: "http://minio:9000"})

	ok, err := store.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)

	fake.headErr = &types.NotFound{}
	ok, err = store.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	fake.headErr = errors.New("access denied")
	_, err = store.Exists(context.Background(), "k")
	assert.Error(t, err)

	assert.Equal(t, "http://minio:9000/media/k", store.URL("k"))
}

func TestProxyPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxies.txt")
	require.NoError(t, os.WriteFile(path, []byte("# pool\nhttp://p1:8080\n\nhttp://p2:8080\n"), 0o644))

	pool, err := LoadProxyPool(path, time.Second)
	require.NoError(t, err)
	require.Equal(t, 2, pool.Len())

	assert.Equal(t, "http://p1:8080", pool.Next())
	assert.Equal(t, "http://p2:8080", pool.Next())
	assert.Equal(t, "http://p1:8080", pool.Next())
	assert.Contains(t, []string{"http://p1:8080", "http://p2:8080"}, pool.Random())

	assert.Same(t, pool.Client("http://p1:8080"), pool.Client("http://p1:8080"))
	assert.NotSame(t, pool.Client("http://p1:8080"), pool.Client(""))
}

func TestProxyPool_Empty(t *testing.T) {
	var pool *ProxyPool
	assert.Equal(t, "", pool.Next())
	assert.Equal(t, "", pool.Random())
	assert.NotNil(t, pool.Client(""))

	empty, err := LoadProxyPool("", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
