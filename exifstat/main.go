package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cul/imgprops/exif"
	"github.com/cul/imgprops/props"
	"github.com/cul/imgprops/tiff"
)

var (
	stopTag  = flag.String("stop", "UNDEF", "stop reading a directory after the tag with this name")
	fast     = flag.Bool("fast", false, "skip UserComment and MakerNote")
	strict   = flag.Bool("strict", false, "fail on malformed directory entries")
	asJSON   = flag.Bool("json", false, "print tags as JSON")
	thumbDir = flag.String("thumb", "", "write thumbnails to this directory")
	showProp = flag.Bool("props", false, "print image properties instead of tags")
)

func main() {
	flag.Parse()
	fnames := flag.Args()

	opts := exif.Options{StopTag: *stopTag, Details: !*fast, Strict: *strict}
	for _, name := range fnames {
		x, err := decodeFile(name, &opts)
		if x == nil {
			log.Printf("err on %v: %v", name, err)
			continue
		}
		if err != nil {
			log.Printf("partial result for %v: %v", name, err)
		}
		if x.Warnings != nil {
			log.Printf("warnings on %v: %v", name, x.Warnings)
		}

		fmt.Printf("\n---- Image '%v' ----\n", name)
		switch {
		case *showProp:
			printJSON(props.FromTags(x.Tags))
		case *asJSON:
			printJSON(x)
		default:
			walkTags(x, Walker{}, name)
		}

		if *thumbDir != "" {
			if err := writeThumbnails(x, name); err != nil {
				log.Printf("thumbnail of %v: %v", name, err)
			}
		}
	}
}

func decodeFile(name string, opts *exif.Options) (*exif.Exif, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return exif.Decode(f, opts)
}

func walkTags(x *exif.Exif, w exif.Walker, name string) {
	if err := x.Walk(w); err != nil {
		log.Printf("walk of %v: %v", name, err)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Printf("json: %v", err)
		return
	}
	fmt.Println(string(data))
}

func writeThumbnails(x *exif.Exif, name string) error {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	thumbs := []struct {
		get func() ([]byte, error)
		ext string
	}{
		{x.JPEGThumbnail, ".thumb.jpg"},
		{x.TIFFThumbnail, ".thumb.tif"},
	}
	for _, th := range thumbs {
		b, err := th.get()
		var nerr exif.TagNotPresentError
		if errors.As(err, &nerr) {
			continue
		}
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(*thumbDir, base+th.ext), b, 0o644); err != nil {
			return err
		}
	}
	return nil
}

type Walker struct{}

func (_ Walker) Walk(name string, tag *tiff.Tag) error {
	fmt.Printf("    %v: %v\n", name, tag.Printable())
	return nil
}
