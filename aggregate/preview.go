package aggregate

import (
	"path"
	"strings"
)

// PreviewKind says how an evidence file can be shown inline.
type PreviewKind string

// Preview kinds. PreviewNone falls back to the download panel.
const (
	PreviewImage       PreviewKind = "image"
	PreviewVideo       PreviewKind = "video"
	PreviewAudio       PreviewKind = "audio"
	PreviewPDF         PreviewKind = "pdf"
	PreviewSpreadsheet PreviewKind = "spreadsheet"
	PreviewDocument    PreviewKind = "document"
	PreviewText        PreviewKind = "text"
	PreviewArchive     PreviewKind = "archive"
	PreviewNone        PreviewKind = "none"
)

var previewKinds = map[string]PreviewKind{
	"jpg": PreviewImage, "jpeg": PreviewImage, "png": PreviewImage, "gif": PreviewImage,
	"bmp": PreviewImage, "webp": PreviewImage,
	"mp4": PreviewVideo, "webm": PreviewVideo, "ogg": PreviewVideo, "mov": PreviewVideo,
	"avi": PreviewVideo, "mkv": PreviewVideo,
	"mp3": PreviewAudio, "wav": PreviewAudio, "m4a": PreviewAudio,
	"pdf":  PreviewPDF,
	"xlsx": PreviewSpreadsheet, "xls": PreviewSpreadsheet, "csv": PreviewSpreadsheet, "ods": PreviewSpreadsheet,
	"docx": PreviewDocument,
	"txt":  PreviewText, "log": PreviewText, "json": PreviewText, "xml": PreviewText,
	"py": PreviewText, "js": PreviewText, "md": PreviewText,
	"zip": PreviewArchive,
}

// Preview classifies a filename by extension.
func Preview(filename string) PreviewKind {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if k, ok := previewKinds[ext]; ok {
		return k
	}
	return PreviewNone
}

// Embeddable reports whether the browser can show the kind natively from the view endpoint.
func (k PreviewKind) Embeddable() bool {
	switch k {
	case PreviewImage, PreviewVideo, PreviewAudio, PreviewPDF, PreviewText:
		return true
	}
	return false
}
