package tile

import (
	"image"
	"image/color"
	"math/rand"

	"venturequest/palette"
)

var errorFill = palette.ErrorFill

// Base colors for the tile vocabulary.
var (
	grassBase  = color.RGBA{54, 120, 58, 255}
	pathBase   = color.RGBA{168, 144, 100, 255}
	woodBase   = color.RGBA{140, 100, 62, 255}
	stoneBase  = color.RGBA{120, 120, 130, 255}
	carpetBase = color.RGBA{128, 44, 52, 255}
	wallBase   = color.RGBA{96, 96, 108, 255}
	waterBase  = color.RGBA{44, 90, 170, 255}
	treeTrunk  = color.RGBA{96, 66, 40, 255}
	treeLeaf   = color.RGBA{34, 92, 44, 255}
	counterTop = color.RGBA{158, 118, 74, 255}
	doorBase   = color.RGBA{110, 74, 44, 255}
	signBase   = color.RGBA{122, 88, 52, 255}
	shelfBase  = color.RGBA{104, 72, 46, 255}
)

type painter func(img *image.RGBA, size int, seed uint32, bucket int64)

var painters = map[ID]painter{
	Grass:      paintGrass,
	Path:       paintPath,
	WoodFloor:  paintWoodFloor,
	StoneFloor: paintStoneFloor,
	Carpet:     paintCarpet,
	Wall:       paintWall,
	Water:      paintWater,
	Tree:       paintTree,
	Counter:    paintCounter,
	Shelf:      paintShelf,
	Door:       paintDoor,
	Sign:       paintSign,
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	b := img.Bounds()
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if xx >= b.Min.X && xx < b.Max.X && yy >= b.Min.Y && yy < b.Max.Y {
				img.SetRGBA(xx, yy, c)
			}
		}
	}
}

// ditherRect stipples every other pixel with the alternate color, the classic
// two-color texture cheat.
func ditherRect(img *image.RGBA, x, y, w, h int, base, alt color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if (xx+yy)%2 == 0 {
				img.SetRGBA(xx, yy, alt)
			} else {
				img.SetRGBA(xx, yy, base)
			}
		}
	}
}

func seededRand(id ID, seed uint32) *rand.Rand {
	return rand.New(rand.NewSource(int64(id)*31 + int64(seed)))
}

func paintGrass(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, grassBase)
	rng := seededRand(Grass, seed)
	blade := palette.Shade(grassBase, 0.35)
	dark := palette.Shade(grassBase, -0.25)
	for i := 0; i < size/2; i++ {
		x, y := rng.Intn(size), rng.Intn(size)
		img.SetRGBA(x, y, blade)
		if y+1 < size {
			img.SetRGBA(x, y+1, dark)
		}
	}
}

func paintPath(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, pathBase)
	rng := seededRand(Path, seed)
	speck := palette.Shade(pathBase, -0.2)
	for i := 0; i < size/3; i++ {
		img.SetRGBA(rng.Intn(size), rng.Intn(size), speck)
	}
}

func paintWoodFloor(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, woodBase)
	gap := palette.Shade(woodBase, -0.3)
	plank := size / 4
	if plank < 1 {
		plank = 1
	}
	for y := plank - 1; y < size; y += plank {
		fillRect(img, 0, y, size, 1, gap)
	}
	// Stagger plank ends by seed.
	rng := seededRand(WoodFloor, seed)
	for y := 0; y < size; y += plank {
		fillRect(img, rng.Intn(size), y, 1, plank-1, gap)
	}
}

func paintStoneFloor(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, stoneBase)
	rng := seededRand(StoneFloor, seed)
	speck := palette.Shade(stoneBase, -0.15)
	light := palette.Shade(stoneBase, 0.12)
	for i := 0; i < size/2; i++ {
		img.SetRGBA(rng.Intn(size), rng.Intn(size), speck)
		img.SetRGBA(rng.Intn(size), rng.Intn(size), light)
	}
}

func paintCarpet(img *image.RGBA, size int, seed uint32, _ int64) {
	ditherRect(img, 0, 0, size, size, carpetBase, palette.Shade(carpetBase, -0.15))
	border := palette.Shade(carpetBase, 0.3)
	if seed%4 == 0 {
		fillRect(img, 0, 0, size, 1, border)
		fillRect(img, 0, size-1, size, 1, border)
	}
}

func paintWall(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, wallBase)
	mortar := palette.Shade(wallBase, -0.35)
	course := size / 4
	if course < 2 {
		course = 2
	}
	for y := 0; y < size; y += course {
		fillRect(img, 0, y, size, 1, mortar)
		// Staggered vertical joints.
		off := 0
		if (y/course+int(seed))%2 == 1 {
			off = size / 2
		}
		fillRect(img, off%size, y, 1, course, mortar)
	}
	fillRect(img, 0, 0, size, 1, palette.Shade(wallBase, 0.2))
}

func paintWater(img *image.RGBA, size int, seed uint32, bucket int64) {
	fillRect(img, 0, 0, size, size, waterBase)
	crest := palette.Shade(waterBase, 0.4)
	deep := palette.Shade(waterBase, -0.2)
	// Wave crests drift one pixel per bucket.
	phase := int(bucket) % size
	for y := 2; y < size; y += 4 {
		x := (phase + y*3 + int(seed)) % size
		img.SetRGBA(x, y, crest)
		img.SetRGBA((x+1)%size, y, crest)
		img.SetRGBA((x+size/2)%size, y+1, deep)
	}
}

func paintTree(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, grassBase)
	// Trunk.
	tw := size / 5
	if tw < 1 {
		tw = 1
	}
	fillRect(img, (size-tw)/2, size/2, tw, size/2, treeTrunk)
	// Canopy: a filled diamond with seeded highlight leaves.
	cx, cy, r := size/2, size/3, size/2-1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if abs(x-cx)+abs(y-cy) <= r {
				img.SetRGBA(x, y, treeLeaf)
			}
		}
	}
	rng := seededRand(Tree, seed)
	light := palette.Shade(treeLeaf, 0.3)
	for i := 0; i < size/3; i++ {
		x, y := rng.Intn(size), rng.Intn(size*2/3)
		if abs(x-cx)+abs(y-cy) <= r {
			img.SetRGBA(x, y, light)
		}
	}
}

func paintCounter(img *image.RGBA, size int, _ uint32, _ int64) {
	fillRect(img, 0, 0, size, size, palette.Shade(counterTop, -0.35))
	fillRect(img, 0, 0, size, size*2/3, counterTop)
	fillRect(img, 0, size*2/3, size, 1, palette.Shade(counterTop, -0.5))
}

func paintShelf(img *image.RGBA, size int, seed uint32, _ int64) {
	fillRect(img, 0, 0, size, size, shelfBase)
	board := palette.Shade(shelfBase, 0.25)
	for y := size / 4; y < size; y += size / 3 {
		fillRect(img, 1, y, size-2, 1, board)
	}
	// A few seeded "books".
	rng := seededRand(Shelf, seed)
	for i := 0; i < 3; i++ {
		c := color.RGBA{uint8(60 + rng.Intn(160)), uint8(60 + rng.Intn(120)), uint8(60 + rng.Intn(140)), 255}
		x := 2 + rng.Intn(size-4)
		fillRect(img, x, size/4-3, 2, 3, c)
	}
}

func paintDoor(img *image.RGBA, size int, _ uint32, _ int64) {
	fillRect(img, 0, 0, size, size, doorBase)
	frame := palette.Shade(doorBase, -0.4)
	fillRect(img, 0, 0, size, 1, frame)
	fillRect(img, 0, 0, 1, size, frame)
	fillRect(img, size-1, 0, 1, size, frame)
	// Handle.
	img.SetRGBA(size-size/4, size/2, palette.Shade(doorBase, 0.6))
}

func paintSign(img *image.RGBA, size int, _ uint32, _ int64) {
	fillRect(img, 0, 0, size, size, grassBase)
	post := palette.Shade(signBase, -0.3)
	fillRect(img, size/2, size/2, 1, size/2, post)
	fillRect(img, size/6, size/6, size*2/3, size/3, signBase)
	fillRect(img, size/6, size/6, size*2/3, 1, palette.Shade(signBase, 0.3))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
