package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element block ("vertex", "face", ...) in file order
type PLYElement struct {
	Name  string
	Count int
	Props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// LoadPLY loads vertex positions and triangle indices from a PLY file.
// Polygons with more than three vertices are split into triangle fans.
func LoadPLY(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	return ReadPLY(file)
}

// ReadPLY parses a PLY stream
func ReadPLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &plyBinaryReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &plyBinaryReader{r: reader, order: binary.BigEndian}
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &plyASCIIReader{s: scanner}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data := &MeshData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read PLY %s data: %w", element.Name, err)
		}
	}

	for i, idx := range data.Indices {
		if idx < 0 || idx >= len(data.Positions) {
			return nil, fmt.Errorf("face index %d at position %d out of bounds [0, %d)", idx, i, len(data.Positions))
		}
	}
	return data, nil
}

// parsePLYHeader reads header lines up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	first := true
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unexpected end of header: %w", err)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element definition: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Props = append(current.Props, prop)
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	return prop, nil
}

// readPLYElement reads every row of an element. Vertex positions and face
// indices are kept, everything else is consumed and dropped.
func readPLYElement(values plyValueReader, element PLYElement, data *MeshData) error {
	isVertex := element.Name == "vertex"
	isFace := element.Name == "face"

	for i := 0; i < element.Count; i++ {
		var position mgl64.Vec3
		for _, prop := range element.Props {
			if prop.IsList {
				list, err := readPLYList(values, prop)
				if err != nil {
					return fmt.Errorf("row %d, property %s: %w", i, prop.Name, err)
				}
				if isFace && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					if err := appendFace(data, list); err != nil {
						return fmt.Errorf("row %d: %w", i, err)
					}
				}
				continue
			}

			v, err := values.read(prop.Type)
			if err != nil {
				return fmt.Errorf("row %d, property %s: %w", i, prop.Name, err)
			}
			if isVertex {
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
		if isVertex {
			data.Positions = append(data.Positions, position)
		}
	}
	return nil
}

// maxPLYListLength bounds the entry count of a single list property
const maxPLYListLength = 1 << 16

func readPLYList(values plyValueReader, prop PLYProperty) ([]int, error) {
	n, err := values.read(prop.ListType)
	if err != nil {
		return nil, err
	}
	if !(n >= 0 && n <= maxPLYListLength) {
		return nil, fmt.Errorf("list length %v outside [0, %d]", n, maxPLYListLength)
	}
	list := make([]int, int(n))
	for j := range list {
		v, err := values.read(prop.DataType)
		if err != nil {
			return nil, err
		}
		list[j] = int(v)
	}
	return list, nil
}

// appendFace triangulates a polygon as a fan around its first vertex
func appendFace(data *MeshData, polygon []int) error {
	if len(polygon) < 3 {
		return fmt.Errorf("face with %d vertices", len(polygon))
	}
	for k := 1; k+1 < len(polygon); k++ {
		data.Indices = append(data.Indices, polygon[0], polygon[k], polygon[k+1])
	}
	return nil
}

// plyValueReader reads one scalar of the given PLY type as float64
type plyValueReader interface {
	read(dataType string) (float64, error)
}

type plyBinaryReader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *plyBinaryReader) read(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	if _, err := io.ReadFull(b.r, b.buf[:size]); err != nil {
		return 0, err
	}
	p := b.buf[:size]

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(p))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(p)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(p))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(p)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(p))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(p)), nil
	case "char", "int8":
		return float64(int8(p[0])), nil
	default: // uchar, uint8
		return float64(p[0]), nil
	}
}

type plyASCIIReader struct {
	s *bufio.Scanner
}

func (a *plyASCIIReader) read(dataType string) (float64, error) {
	if getTypeSize(dataType) == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	if !a.s.Scan() {
		if err := a.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.s.Text(), 64)
}

// getTypeSize returns the size in bytes of a PLY data type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}
