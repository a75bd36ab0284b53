package backend

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Download is a streamed file body. Callers must Close it.
type Download struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

// Close releases the underlying response.
func (d *Download) Close() error {
	return d.Body.Close()
}

const defaultDownloadName = "evidence_file"

// filenameFrom pulls the filename out of a Content-Disposition header.
func filenameFrom(header, fallback string) string {
	if header == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return params["filename"]
}

func (c *Client) download(ctx context.Context, token, path string, query url.Values, fallback, defaultName string) (*Download, error) {
	resp, err := c.do(ctx, call{method: http.MethodGet, path: path, query: query, token: token, fallback: fallback})
	if err != nil {
		return nil, err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &Download{
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition"), defaultName),
		ContentType: ct,
		Body:        resp.Body,
	}, nil
}

type filePart struct {
	field string
	name  string
	r     io.Reader
}

// upload sends a multipart form. The body is streamed through a pipe so large evidence files
// are never held in memory.
func (c *Client) upload(ctx context.Context, token, path, fallback string, fields map[string]string, files []filePart, out interface{}) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeMultipart(mw, fields, files))
	}()
	err := c.fetch(ctx, call{
		method:      http.MethodPost,
		path:        path,
		token:       token,
		body:        pr,
		contentType: mw.FormDataContentType(),
		fallback:    fallback,
	}, out)
	// Unblock the writer if the request ended before the body was consumed.
	pr.Close()
	return err
}

func writeMultipart(mw *multipart.Writer, fields map[string]string, files []filePart) error {
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return errors.Wrapf(err, "write field %s", k)
		}
	}
	for _, f := range files {
		w, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			return errors.Wrapf(err, "create part %s", f.name)
		}
		if _, err := io.Copy(w, f.r); err != nil {
			return errors.Wrapf(err, "copy part %s", f.name)
		}
	}
	return mw.Close()
}
