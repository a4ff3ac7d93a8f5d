package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
)

// Pictures are the media types accepted for profile pictures.
var Pictures = []MIME{ImageJPEG, ImagePNG}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Detect sniffs the media type from the content itself; the declared
// type of an upload is never trusted.
func Detect(data []byte) MIME {
	if len(data) == 0 {
		return Unknown
	}
	return ToMIME(mimetype.Detect(data).String())
}

// ToMIME drops parameters such as charset.
func ToMIME(raw string) MIME {
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// IsPicture reports whether m is an accepted picture type.
func IsPicture(m MIME) bool {
	for _, p := range Pictures {
		if _, ok := Matches(string(m), p); ok {
			return true
		}
	}
	return false
}

// Extension returns the file extension used when storing the asset.
func Extension(m MIME) string {
	switch m {
	case ImageJPEG:
		return ".jpg"
	case ImagePNG:
		return ".png"
	}
	return ""
}
