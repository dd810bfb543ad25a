package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// plyProperty is a property definition from a PLY header
type plyProperty struct {
	Name      string
	Type      string
	IsList    bool
	CountType string // For list properties, the type of the element count
}

// plyElement is an element block from a PLY header, in file order
type plyElement struct {
	Name  string
	Count int
	Props []plyProperty
}

// plyHeader is the parsed header of a PLY file
type plyHeader struct {
	Format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	Elements []plyElement
}

// valueReader yields the scalar values of a PLY body one at a time
type valueReader interface {
	next(dataType string) (float64, error)
}

// LoadPLY reads vertex positions and faces from an ASCII or binary PLY file.
// Polygons with more than three vertices are fanned into triangles.
func LoadPLY(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	data.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return data, nil
}

// ReadPLY parses a PLY stream
func ReadPLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReader(r)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse PLY header: %w", err)
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiValues{scanner: scanner}
	case "binary_little_endian":
		values = &binaryValues{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data := &MeshData{}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := readPLYRecord(values, element, data); err != nil {
				return nil, fmt.Errorf("read %s %d: %w", element.Name, i, err)
			}
		}
	}
	return data, nil
}

func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header not terminated: %w", err)
		}
		parts := strings.Fields(line)
		if first {
			if len(parts) != 1 || parts[0] != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			if header.Format == "" {
				return nil, fmt.Errorf("missing format line")
			}
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Props = append(current.Props, prop)
		}
	}
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{IsList: true, CountType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	return plyProperty{Type: parts[0], Name: parts[1]}, nil
}

// readPLYRecord reads one element record, keeping vertex positions and face
// index lists and discarding everything else
func readPLYRecord(values valueReader, element plyElement, data *MeshData) error {
	var position [3]float64
	for _, prop := range element.Props {
		if prop.IsList {
			n, err := values.next(prop.CountType)
			if err != nil {
				return err
			}
			indices := make([]int, int(n))
			for i := range indices {
				v, err := values.next(prop.Type)
				if err != nil {
					return err
				}
				indices[i] = int(v)
			}
			if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
				data.Faces = appendFan(data.Faces, indices)
			}
			continue
		}

		v, err := values.next(prop.Type)
		if err != nil {
			return err
		}
		if element.Name == "vertex" {
			switch prop.Name {
			case "x":
				position[0] = v
			case "y":
				position[1] = v
			case "z":
				position[2] = v
			}
		}
	}
	if element.Name == "vertex" {
		data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
	}
	return nil
}

// appendFan triangulates a convex polygon around its first vertex
func appendFan(faces []int, polygon []int) []int {
	for i := 1; i+1 < len(polygon); i++ {
		faces = append(faces, polygon[0], polygon[i], polygon[i+1])
	}
	return faces
}

type asciiValues struct {
	scanner *bufio.Scanner
}

func (a *asciiValues) next(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.scanner.Text())
	}
	return v, nil
}

type binaryValues struct {
	reader *bufio.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValues) next(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unknown PLY type %q", dataType)
	}
	raw := b.buf[:size]
	if _, err := io.ReadFull(b.reader, raw); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(raw[0])), nil
	case "uchar", "uint8":
		return float64(raw[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	default:
		return math.Float64frombits(b.order.Uint64(raw)), nil
	}
}

// plyTypeSize returns the size in bytes of a PLY scalar type, 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "uchar", "int8", "uint8":
		return 1
	case "short", "ushort", "int16", "uint16":
		return 2
	case "int", "uint", "int32", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}
