// Package bundle packages generated mockups into a zip archive for download.
package bundle

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// File is one archive member read from Path and stored as Name.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type Bundle struct {
	Name  string `json:"name"`
	Files []File `json:"files"`
}

// ArchiveName builds "Mock_Ups_{client}_{date}.zip".
func ArchiveName(client, liveDate string) string {
	return fmt.Sprintf("Mock_Ups_%s_%s.zip", client, liveDate)
}

// WriteZip streams the bundle as a zip archive to w.
func (b Bundle) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, f := range b.Files {
		if err := addFile(zw, f); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

// WriteZipFile writes the archive to path.
func (b Bundle) WriteZipFile(path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.WriteZip(fp); err != nil {
		fp.Close()
		os.Remove(path)
		return err
	}
	return fp.Close()
}

func addFile(zw *zip.Writer, f File) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = f.Name
	// jpegs do not compress further
	hdr.Method = zip.Store

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", f.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("adding %s: %w", f.Name, err)
	}
	return nil
}
