package loaders

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/qmuntal/gltf"
)

// LoadGLTF reads the triangle primitives of every mesh in a glTF or GLB file
func LoadGLTF(path string) (*MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	data, err := FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	data.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return data, nil
}

// FromDocument flattens the triangle primitives of a decoded document into
// one triangle list. Points, lines, strips and fans are ignored.
func FromDocument(doc *gltf.Document) (*MeshData, error) {
	data := &MeshData{}
	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, data); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}
	return data, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, data *MeshData) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := readPositions(doc, posIdx)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	base := len(data.Vertices)
	data.Vertices = append(data.Vertices, positions...)

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			data.Faces = append(data.Faces, base+i, base+i+1, base+i+2)
		}
		return nil
	}

	indices, err := readIndices(doc, *prim.Indices)
	if err != nil {
		return fmt.Errorf("read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		data.Faces = append(data.Faces, base+indices[i], base+indices[i+1], base+indices[i+2])
	}
	return nil
}

// accessorBytes returns the buffer backing an accessor, its first byte offset
// and its element stride, checking that every element lies inside the buffer
func accessorBytes(doc *gltf.Document, accessorIdx int, elementSize int) ([]byte, int, int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, 0, 0, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor %d has no buffer view", accessorIdx)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer %d has no data", bufferView.Buffer)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elementSize
	}
	if accessor.Count > 0 {
		end := start + (accessor.Count-1)*stride + elementSize
		if end > len(buffer.Data) {
			return nil, 0, 0, fmt.Errorf("accessor %d reads past end of buffer (%d > %d)", accessorIdx, end, len(buffer.Data))
		}
	}
	return buffer.Data, start, stride, nil
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]core.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3 positions, got %v of %v", accessor.Type, accessor.ComponentType)
	}

	buf, start, stride, err := accessorBytes(doc, accessorIdx, 12)
	if err != nil {
		return nil, err
	}
	positions := make([]core.Vec3, accessor.Count)
	for i := range positions {
		offset := start + i*stride
		positions[i] = core.NewVec3(
			readFloat32(buf[offset:]),
			readFloat32(buf[offset+4:]),
			readFloat32(buf[offset+8:]),
		)
	}
	return positions, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	buf, start, stride, err := accessorBytes(doc, accessorIdx, size)
	if err != nil {
		return nil, err
	}
	indices := make([]int, accessor.Count)
	for i := range indices {
		offset := start + i*stride
		switch size {
		case 1:
			indices[i] = int(buf[offset])
		case 2:
			indices[i] = int(binary.LittleEndian.Uint16(buf[offset:]))
		default:
			indices[i] = int(binary.LittleEndian.Uint32(buf[offset:]))
		}
	}
	return indices, nil
}

func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
