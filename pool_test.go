package blurpass

import "testing"

// --- nextPowerOfTwo ---

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		input, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{128, 128},
		{129, 256},
		{1000, 1024},
		{1080, 2048},
		{1920, 2048},
	}
	for _, tt := range tests {
		got := nextPowerOfTwo(tt.input)
		if got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// --- Pool ---

func TestPoolAcquireReturnsPow2(t *testing.T) {
	var pool renderTexturePool
	img := pool.Acquire(100, 50)
	defer pool.Release(img)

	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("Acquire(100, 50) size = %dx%d, want 128x64", b.Dx(), b.Dy())
	}
}

func TestPoolReuse(t *testing.T) {
	var pool renderTexturePool
	a := pool.Acquire(60, 60)
	pool.Release(a)
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d after release, want 1", pool.Len())
	}
	b := pool.Acquire(64, 33)
	if a != b {
		t.Error("Acquire should reuse a released image of the same bucket")
	}
	if pool.Len() != 0 {
		t.Errorf("Len() = %d after reacquire, want 0", pool.Len())
	}
}

func TestPoolReleaseNil(t *testing.T) {
	var pool renderTexturePool
	pool.Release(nil)
	if pool.Len() != 0 {
		t.Errorf("Len() = %d after Release(nil), want 0", pool.Len())
	}
}

func TestPoolDispose(t *testing.T) {
	var pool renderTexturePool
	pool.Release(pool.Acquire(16, 16))
	pool.Release(pool.Acquire(300, 20))
	pool.Dispose()
	if pool.Len() != 0 {
		t.Errorf("Len() = %d after Dispose, want 0", pool.Len())
	}
}

func TestRegion(t *testing.T) {
	var pool renderTexturePool
	img := pool.Acquire(100, 50)
	defer pool.Release(img)

	sub := region(img, 100, 50)
	b := sub.Bounds()
	if b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("region bounds = %v, want (0,0)-(100,50)", b)
	}
}
