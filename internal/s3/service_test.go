package s3

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backup-uploader/internal/config"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tc := map[string]struct {
		cfg     *config.Config
		wantErr error
	}{
		"valid config": {
			cfg: createTestConfig(),
		},
		"nil config": {
			wantErr: ErrNilConfig,
		},
	}

	for name, tc := range tc {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc, err := NewService(ctx, tc.cfg)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, svc)
			assert.NotNil(t, svc.uploader)
			assert.Equal(t, "test-bucket", svc.bucket)
			assert.Equal(t, "backups", svc.prefix)
			assert.Equal(t, "s3", svc.Name())
		})
	}
}

func TestService_Upload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tc := map[string]struct {
		setup   func(t *testing.T) (svc *Service, filePath string, mock *mockUploadAPI)
		wantErr error
	}{
		"empty filename": {
			setup: func(_ *testing.T) (*Service, string, *mockUploadAPI) {
				mock := &mockUploadAPI{}
				return newTestService(mock, ""), "", mock
			},
			wantErr: ErrEmptyFilename,
		},
		"file does not exist": {
			setup: func(_ *testing.T) (*Service, string, *mockUploadAPI) {
				mock := &mockUploadAPI{}
				return newTestService(mock, ""), "/nonexistent/db.tar.gz", mock
			},
			wantErr: os.ErrNotExist,
		},
		"upload failure": {
			setup: func(t *testing.T) (*Service, string, *mockUploadAPI) {
				mock := &mockUploadAPI{shouldFail: true}
				return newTestService(mock, ""), createTestFile(t, "db.tar.gz"), mock
			},
			wantErr: errMockUpload,
		},
		"successful upload": {
			setup: func(t *testing.T) (*Service, string, *mockUploadAPI) {
				mock := &mockUploadAPI{}
				return newTestService(mock, ""), createTestFile(t, "db.tar.gz"), mock
			},
		},
	}

	for name, tc := range tc {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc, filePath, mock := tc.setup(t)

			res, err := svc.Upload(ctx, filePath)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, "s3", res.Backend)
			assert.Equal(t, filePath, res.File)
			assert.Equal(t, "db.tar.gz", res.Key)
			assert.Equal(t, `"etag-1"`, res.ETag)

			require.Len(t, mock.inputs, 1)
			assert.Equal(t, "test-bucket", aws.ToString(mock.inputs[0].Bucket))
			assert.Equal(t, "db.tar.gz", aws.ToString(mock.inputs[0].Key))
			assert.Equal(t, []string{"test content"}, mock.bodies)
		})
	}
}

func TestService_Upload_Prefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mock := &mockUploadAPI{}
	svc := newTestService(mock, "backups")
	filePath := createTestFile(t, "db.tar.gz")

	res, err := svc.Upload(ctx, filePath)

	require.NoError(t, err)
	assert.Equal(t, "backups/db.tar.gz", res.Key)
	require.Len(t, mock.inputs, 1)
	assert.Equal(t, "backups/db.tar.gz", aws.ToString(mock.inputs[0].Key))
}

func TestService_ObjectKey(t *testing.T) {
	t.Parallel()

	tc := map[string]struct {
		prefix   string
		filePath string
		want     string
	}{
		"bare file name": {
			filePath: "db.tar.gz",
			want:     "db.tar.gz",
		},
		"strips directories": {
			filePath: "/var/backups/db.tar.gz",
			want:     "db.tar.gz",
		},
		"with prefix": {
			prefix:   "backups",
			filePath: "/var/backups/db.tar.gz",
			want:     "backups/db.tar.gz",
		},
		"prefix with trailing slash": {
			prefix:   "backups/",
			filePath: "db.tar.gz",
			want:     "backups/db.tar.gz",
		},
	}

	for name, tc := range tc {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := &Service{prefix: tc.prefix}

			assert.Equal(t, tc.want, svc.objectKey(tc.filePath))
		})
	}
}

// mockUploadAPI is a transfer manager client that records uploads instead of
// calling AWS.
type mockUploadAPI struct {
	shouldFail bool

	mu     sync.Mutex
	inputs []*s3.PutObjectInput
	bodies []string
}

var errMockUpload = errors.New("mock upload failure")

func (m *mockUploadAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.shouldFail {
		return nil, errMockUpload
	}

	var body []byte
	if params.Body != nil {
		var err error
		body, err = io.ReadAll(params.Body)
		if err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.inputs = append(m.inputs, params)
	m.bodies = append(m.bodies, string(body))
	m.mu.Unlock()

	return &s3.PutObjectOutput{ETag: aws.String(`"etag-1"`)}, nil
}

func (m *mockUploadAPI) UploadPart(_ context.Context, _ *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart not expected for small test files")
}

func (m *mockUploadAPI) CreateMultipartUpload(_ context.Context, _ *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected for small test files")
}

func (m *mockUploadAPI) CompleteMultipartUpload(_ context.Context, _ *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected for small test files")
}

func (m *mockUploadAPI) AbortMultipartUpload(_ context.Context, _ *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected for small test files")
}

// newTestService builds a Service around the mock client.
func newTestService(mock manager.UploadAPIClient, prefix string) *Service {
	return &Service{
		uploader: manager.NewUploader(mock),
		bucket:   "test-bucket",
		prefix:   prefix,
	}
}

// createTestFile writes a small backup file into a temp directory.
func createTestFile(t *testing.T, name string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte("test content"), 0600))

	return filePath
}

// createTestConfig returns a config valid for s3 mode.
func createTestConfig() *config.Config {
	return &config.Config{
		AccessKey:  "test-access",
		SecretKey:  "test-secret",
		Region:     "us-west-2",
		BucketName: "test-bucket",
		Prefix:     "backups",
		Mode:       config.ModeS3,
		PartSize:   8,
		Threads:    2,
	}
}
