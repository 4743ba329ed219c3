package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	_ "image/gif"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
	xdraw "golang.org/x/image/draw"
)

// thumbnail is a decoded, downscaled image ready to place: JPEG bytes
// registered under a per-document unique name plus its placed size in
// points (1 px = 1 pt).
type thumbnail struct {
	name string
	w, h float64
	buf  *bytes.Buffer
}

// renderPhotoAppendix lays out photo thumbnails left to right, wrapping
// to a new row when the next one would cross the right margin and
// breaking the page when a row does not fit vertically. Images that
// fail to load or decode are skipped; the rest of the appendix still
// renders.
func (r *docRenderer) renderPhotoAppendix() {
	if len(r.snap.PhotoRefs) == 0 || r.images == nil {
		return
	}

	var thumbs []*thumbnail
	for _, ref := range r.snap.PhotoRefs {
		thumb, err := r.loadThumbnail(ref, r.cfg.ThumbnailMax)
		if err != nil {
			log.Printf("WARN: skipping photo %q: %v", ref, err)
			continue
		}
		thumbs = append(thumbs, thumb)
	}
	if len(thumbs) == 0 {
		return
	}

	geom := r.flow.Geometry()
	gap := r.cfg.ThumbnailGap
	rightEdge := geom.Width - geom.MarginRight

	r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
	r.flow.EnsureSpace(bodyLineH + thumbs[0].h)
	r.writeHeading("Attachments")

	x := geom.MarginLeft
	maxRowH := 0.0
	for _, thumb := range thumbs {
		// Horizontal wrap comes first; only then the vertical check.
		if x+thumb.w > rightEdge && x > geom.MarginLeft {
			r.flow.Advance(maxRowH + gap)
			x = geom.MarginLeft
			maxRowH = 0
		}
		r.flow.EnsureSpace(thumb.h)
		r.placeImage(thumb, x, r.flow.Y())
		x += thumb.w + gap
		if thumb.h > maxRowH {
			maxRowH = thumb.h
		}
	}
	r.flow.Advance(maxRowH + sectionGap)
}

// loadThumbnail loads and decodes one image reference and scales it so
// its longest edge fits maxEdge points, preserving aspect ratio. Images
// already within the bound keep their size.
func (r *docRenderer) loadThumbnail(ref string, maxEdge float64) (*thumbnail, error) {
	if r.images == nil {
		return nil, fmt.Errorf("no image source configured")
	}
	data, err := r.images.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image has empty bounds")
	}
	scale := 1.0
	longest := w
	if h > longest {
		longest = h
	}
	if longest > maxEdge {
		scale = maxEdge / longest
	}
	tw, th := int(w*scale+0.5), int(h*scale+0.5)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	r.imageSeq++
	return &thumbnail{
		name: fmt.Sprintf("img-%d", r.imageSeq),
		w:    float64(tw),
		h:    float64(th),
		buf:  &buf,
	}, nil
}

// placeImage registers the thumbnail with the surface and draws it at
// the given position without moving the cursor.
func (r *docRenderer) placeImage(t *thumbnail, x, y float64) {
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	r.pdf.RegisterImageOptionsReader(t.name, opts, t.buf)
	r.pdf.ImageOptions(t.name, x, y, t.w, t.h, false, opts, 0, "")
}
