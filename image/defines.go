package image

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// TypeID of a sniffed image
type TypeID uint8

const (
	TypeNone TypeID = iota
	TypeGIF
	TypeJPEG
	TypePNG
	TypeBMP
	TypeTIFF
	TypeWEBP
)

const (
	sigGIF    = "GIF8"
	sigJPEG   = "\xff\xd8\xff"
	sigPNG    = "\211PNG\r\n\032\n"
	sigBMP    = "BM"
	sigTIFFLE = "II*\x00"
	sigTIFFBE = "MM\x00*"
	sigRIFF   = "RIFF"
	sigWEBP   = "WEBP"
	headSize  = 12
)

// Ext returns the canonical extension with leading dot
func (t TypeID) Ext() string {
	switch t {
	case TypeGIF:
		return ".gif"
	case TypeJPEG:
		return ".jpg"
	case TypePNG:
		return ".png"
	case TypeBMP:
		return ".bmp"
	case TypeTIFF:
		return ".tiff"
	case TypeWEBP:
		return ".webp"
	default:
		return ""
	}
}

func (t TypeID) String() string {
	if ext := t.Ext(); ext != "" {
		return ext[1:]
	}
	return "none"
}

// GuessTypeBytes sniffs the leading bytes of data
func GuessTypeBytes(data []byte) TypeID {
	switch {
	case bytes.HasPrefix(data, []byte(sigGIF)):
		return TypeGIF
	case bytes.HasPrefix(data, []byte(sigJPEG)):
		return TypeJPEG
	case bytes.HasPrefix(data, []byte(sigPNG)):
		return TypePNG
	case bytes.HasPrefix(data, []byte(sigTIFFLE)), bytes.HasPrefix(data, []byte(sigTIFFBE)):
		return TypeTIFF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte(sigRIFF)) && string(data[8:12]) == sigWEBP:
		return TypeWEBP
	case bytes.HasPrefix(data, []byte(sigBMP)):
		return TypeBMP
	}
	return TypeNone
}

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// GuessType peeks at the head of r without consuming it
func GuessType(r reader) (TypeID, error) {
	head, err := r.Peek(headSize)
	if len(head) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return TypeNone, ErrEmpty
		}
		return TypeNone, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return TypeNone, err
	}
	return GuessTypeBytes(head), nil
}
