package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// squareVertices form a unit square in the z=0 plane
var squareVertices = []core.Vec3{
	core.NewVec3(0, 0, 0),
	core.NewVec3(1, 0, 0),
	core.NewVec3(1, 1, 0),
	core.NewVec3(0, 1, 0),
}

// createTestPLY writes a binary PLY square made of two triangles. Normals and
// colors are written as extra properties that the loader must skip.
func createTestPLY(t *testing.T, filename string, order binary.ByteOrder, formatName string) {
	t.Helper()
	var buf bytes.Buffer

	buf.WriteString("ply\n")
	buf.WriteString("format " + formatName + " 1.0\n")
	buf.WriteString("comment square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	buf.WriteString("property float nx\n")
	buf.WriteString("property float ny\n")
	buf.WriteString("property float nz\n")
	buf.WriteString("property uchar red\n")
	buf.WriteString("property uchar green\n")
	buf.WriteString("property uchar blue\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	for _, v := range squareVertices {
		binary.Write(&buf, order, []float32{float32(v.X), float32(v.Y), float32(v.Z), 0, 0, 1})
		binary.Write(&buf, order, []uint8{255, 0, 0})
	}
	for _, face := range [][]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, face)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write test PLY: %v", err)
	}
}

func assertSquare(t *testing.T, data *MeshData) {
	t.Helper()
	if len(data.Vertices) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	for i, v := range squareVertices {
		if data.Vertices[i] != v {
			t.Errorf("Vertex %d: expected %v, got %v", i, v, data.Vertices[i])
		}
	}
	expected := []int{0, 1, 2, 0, 2, 3}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected faces %v, got %v", expected, data.Faces)
	}
	for i := range expected {
		if data.Faces[i] != expected[i] {
			t.Errorf("Expected faces %v, got %v", expected, data.Faces)
			break
		}
	}
}

func TestLoadPLY_Binary(t *testing.T) {
	tests := []struct {
		name   string
		order  binary.ByteOrder
		format string
	}{
		{"little endian", binary.LittleEndian, "binary_little_endian"},
		{"big endian", binary.BigEndian, "binary_big_endian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), "square.ply")
			createTestPLY(t, testFile, tt.order, tt.format)

			data, err := LoadPLY(testFile)
			if err != nil {
				t.Fatalf("LoadPLY failed: %v", err)
			}
			assertSquare(t, data)
			if data.Name != "square" {
				t.Errorf("Expected name 'square', got %q", data.Name)
			}
		})
	}
}

func TestReadPLY_ASCIIQuadIsFanned(t *testing.T) {
	input := `ply
format ascii 1.0
element vertex 4
property double x
property double y
property double z
element face 1
property list uchar int vertex_index
end_header
0 0 0
1 0 0
1 1 0
0 1 0
4 0 1 2 3
`
	data, err := ReadPLY(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}
	assertSquare(t, data)
	if data.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", data.TriangleCount())
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"missing format", "ply\nelement vertex 0\nend_header\n"},
		{"unterminated header", "ply\nformat ascii 1.0\n"},
		{"unsupported format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"bad element count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"property without element", "ply\nformat ascii 1.0\nproperty float x\nend_header\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"non-numeric value", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nend_header\nabc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPLY(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadPLY_NonExistentFile(t *testing.T) {
	if _, err := LoadPLY("nonexistent.ply"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestPLYTypeSize(t *testing.T) {
	tests := []struct {
		dataType string
		expected int
	}{
		{"char", 1},
		{"uchar", 1},
		{"short", 2},
		{"ushort", 2},
		{"int", 4},
		{"uint32", 4},
		{"float", 4},
		{"double", 8},
		{"unknown", 0},
	}

	for _, tt := range tests {
		if got := plyTypeSize(tt.dataType); got != tt.expected {
			t.Errorf("plyTypeSize(%q): expected %d, got %d", tt.dataType, tt.expected, got)
		}
	}
}

func TestLoadMesh_DispatchesOnExtension(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "Square.PLY")
	createTestPLY(t, testFile, binary.LittleEndian, "binary_little_endian")

	if !IsModelFile(testFile) {
		t.Errorf("Expected %s to be recognized as a model", testFile)
	}
	data, err := LoadMesh(testFile)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}

	mesh, err := data.ToTriangleMesh(geometry.Appearance{}, nil)
	if err != nil {
		t.Fatalf("ToTriangleMesh failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}

	if IsModelFile("scene.obj") {
		t.Error("Expected .obj to be unsupported")
	}
	if _, err := LoadMesh("scene.obj"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
