package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThumbnailClampsLongestEdge(t *testing.T) {
	images := mapImageSource{"wide.png": pngBytes(t, 600, 300)}
	r := newTestRenderer(t, testSnapshot(), nil, images)

	thumb, err := r.loadThumbnail("wide.png", 150)
	require.NoError(t, err)

	assert.InDelta(t, 150, thumb.w, 1)
	assert.InDelta(t, 75, thumb.h, 1)
}

func TestLoadThumbnailKeepsSmallImages(t *testing.T) {
	images := mapImageSource{"small.png": pngBytes(t, 40, 30)}
	r := newTestRenderer(t, testSnapshot(), nil, images)

	thumb, err := r.loadThumbnail("small.png", 150)
	require.NoError(t, err)

	assert.InDelta(t, 40, thumb.w, 0.01)
	assert.InDelta(t, 30, thumb.h, 0.01)
}

func TestLoadThumbnailFailsOnCorruptData(t *testing.T) {
	images := mapImageSource{"corrupt.jpg": []byte("this is not an image")}
	r := newTestRenderer(t, testSnapshot(), nil, images)

	_, err := r.loadThumbnail("corrupt.jpg", 150)
	assert.Error(t, err)
}

func TestPhotoAppendixSkipsBadImages(t *testing.T) {
	images := mapImageSource{
		"a.png":       pngBytes(t, 200, 200),
		"corrupt.jpg": []byte("garbage"),
		"b.png":       pngBytes(t, 200, 200),
	}

	snap := testSnapshot()
	snap.PhotoRefs = []string{"a.png", "corrupt.jpg", "missing.png", "b.png"}
	r := newTestRenderer(t, snap, nil, images)

	r.renderPhotoAppendix()

	// Only the two good images were registered and placed.
	assert.Equal(t, 2, r.imageSeq)
}

func TestPhotoAppendixWrapsRows(t *testing.T) {
	images := mapImageSource{"p.png": pngBytes(t, 300, 300)}

	snap := testSnapshot()
	// Four 150pt thumbnails plus gaps exceed the 515pt usable width, so
	// the fourth wraps onto a second row.
	snap.PhotoRefs = []string{"p.png", "p.png", "p.png", "p.png"}
	r := newTestRenderer(t, snap, nil, images)

	start := r.flow.Y()
	r.renderPhotoAppendix()
	delta := r.flow.Y() - start

	// Heading plus two rows of 150pt thumbnails.
	assert.Greater(t, delta, 300.0)
	assert.Equal(t, 4, r.imageSeq)
}

func TestPhotoAppendixRendersNothingWithoutRefs(t *testing.T) {
	r := newTestRenderer(t, testSnapshot(), nil, mapImageSource{})
	start := r.flow.Y()
	r.renderPhotoAppendix()
	assert.InDelta(t, start, r.flow.Y(), 0.01)
	assert.Equal(t, 1, r.flow.Page())
}
