package ppm

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"rayscene/pkg/core"
)

func TestEncode(t *testing.T) {
	pixels := [][]core.Vec3{
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 0, 1), core.NewVec3(0.5, 0.5, 0.5)},
	}

	var sb strings.Builder
	if err := Encode(&sb, pixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0 0 255 0\n0 0 255 127 127 127\n"
	if sb.String() != expected {
		t.Errorf("Expected output:\n%q\ngot:\n%q", expected, sb.String())
	}
}

func TestEncode_LineCountAndRange(t *testing.T) {
	height, width := 5, 4
	pixels := make([][]core.Vec3, height)
	for j := range pixels {
		pixels[j] = make([]core.Vec3, width)
		for i := range pixels[j] {
			pixels[j][i] = core.NewVec3(float64(i)/3.0, float64(j)/4.0, 2.0)
		}
	}

	var sb strings.Builder
	if err := Encode(&sb, pixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != height+3 {
		t.Fatalf("Expected %d lines (3 header + %d rows), got %d", height+3, height, len(lines))
	}
	if lines[0] != "P3" || lines[1] != "4 5" || lines[2] != "255" {
		t.Errorf("Unexpected header lines: %v", lines[:3])
	}

	for _, line := range lines[3:] {
		values := strings.Fields(line)
		if len(values) != width*3 {
			t.Fatalf("Expected %d channel values per row, got %d", width*3, len(values))
		}
		for _, value := range values {
			channel, err := strconv.Atoi(value)
			if err != nil {
				t.Fatalf("Non-integer channel value %q: %v", value, err)
			}
			if channel < 0 || channel > 255 {
				t.Errorf("Channel value out of range: %d", channel)
			}
		}
	}
}

func TestEncode_ClampsOutOfRangeInput(t *testing.T) {
	pixels := [][]core.Vec3{{core.NewVec3(-1.0, 2.0, 1.0)}}

	var sb strings.Builder
	if err := Encode(&sb, pixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n1 1\n255\n0 255 255\n"
	if sb.String() != expected {
		t.Errorf("Expected %q, got %q", expected, sb.String())
	}
}

func TestEncode_EmptyGrid(t *testing.T) {
	var sb strings.Builder
	if err := Encode(&sb, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sb.String() != "P3\n0 0\n255\n" {
		t.Errorf("Expected bare header for empty grid, got %q", sb.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	pixels := [][]core.Vec3{{core.NewVec3(1, 1, 1)}}

	if err := WriteFile(path, pixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(content) != "P3\n1 1\n255\n255 255 255\n" {
		t.Errorf("Unexpected file content: %q", content)
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.ppm"), pixels); err == nil {
		t.Error("Expected error when the target directory does not exist")
	}
}
