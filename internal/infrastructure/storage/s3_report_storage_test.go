package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    []byte
	expires time.Duration
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://" + aws.ToString(in.Bucket) + ".s3.amazonaws.com/" + aws.ToString(in.Key) + "?X-Amz-Signature=x"}, nil
}

func TestS3ReportStorage(t *testing.T) {
	fake := &fakeS3{}
	st := NewS3ReportStorage(fake, fake, "agenda-reportes")

	if err := st.Put(context.Background(), "reportes/2026/10/14/abc-Ruta_Jairo_2026-10-14.pdf", "application/pdf", []byte("%PDF")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.put.Bucket) != "agenda-reportes" || aws.ToString(fake.put.ContentType) != "application/pdf" || string(fake.body) != "%PDF" {
		t.Fatalf("unexpected put %+v", fake.put)
	}
	if got := aws.ToString(fake.put.ContentDisposition); got != `attachment; filename="abc-Ruta_Jairo_2026-10-14.pdf"` {
		t.Fatalf("unexpected disposition %s", got)
	}

	url, err := st.PresignGet(context.Background(), "reportes/x.pdf", 15*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://agenda-reportes.s3.amazonaws.com/reportes/x.pdf?X-Amz-Signature=x" || fake.expires != 15*time.Minute {
		t.Fatalf("unexpected presign %s %v", url, fake.expires)
	}
}

func TestS3ReportStorage_PutError(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	st := NewS3ReportStorage(fake, fake, "b")
	if err := st.Put(context.Background(), "k", "image/png", nil); err == nil {
		t.Fatalf("expected error")
	}
}
