package step

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// Writer handles STEP file generation
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	converter  *MeshConverter
	fileName   string
	authorName string
	orgName    string
}

// NewWriter creates a new STEP writer
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &Writer{
		file:       file,
		writer:     bufio.NewWriter(file),
		converter:  NewMeshConverter(),
		fileName:   filepath.Base(path),
		authorName: "ifc-resolve User",
		orgName:    "ifc-resolve Organization",
	}, nil
}

// SetAuthor sets the author information
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

// Close closes the writer and flushes any remaining data
func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// writeHeader writes the STEP file header
func (w *Writer) writeHeader() error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'ifc-resolve STEP Writer','ifc-resolve','');",
			w.fileName,
			time.Now().Format("2006-01-02T15:04:05"),
			w.authorName,
			w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}

	for _, line := range header {
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeData writes the DATA section with entities
func (w *Writer) writeData(entities []Entity) error {
	if _, err := w.writer.WriteString("DATA;\n"); err != nil {
		return err
	}

	for _, entity := range entities {
		str := entity.String()
		// Handle multi-line entities (complex types)
		if strings.Contains(str, "\n") {
			lines := strings.Split(str, "\n")
			for _, line := range lines {
				if _, err := w.writer.WriteString(line + "\n"); err != nil {
					return err
				}
			}
		} else {
			if _, err := w.writer.WriteString(str + "\n"); err != nil {
				return err
			}
		}
	}

	if _, err := w.writer.WriteString("ENDSEC;\n"); err != nil {
		return err
	}

	return nil
}

// writeFooter writes the STEP file footer
func (w *Writer) writeFooter() error {
	if _, err := w.writer.WriteString("END-ISO-10303-21;\n"); err != nil {
		return err
	}
	return nil
}

// WriteGeometry writes a resolved indexed triangle mesh to the STEP file
// as a single named product.
func (w *Writer) WriteGeometry(geom *ifcgeom.Geometry, name string) error {
	fmt.Printf("WriteGeometry: starting with %d triangles\n", geom.NumFaces())

	optimized := OptimizeGeometry(geom)
	fmt.Printf("WriteGeometry: optimized to %d triangles\n", optimized.NumFaces())

	fmt.Println("WriteGeometry: converting to STEP entities...")
	entities := w.converter.ConvertGeometry(optimized, name)
	fmt.Printf("WriteGeometry: created %d entities\n", len(entities))

	fmt.Println("WriteGeometry: writing header...")
	if err := w.writeHeader(); err != nil {
		return err
	}

	fmt.Println("WriteGeometry: writing data section...")
	if err := w.writeData(entities); err != nil {
		return err
	}

	fmt.Println("WriteGeometry: writing footer...")
	if err := w.writeFooter(); err != nil {
		return err
	}

	fmt.Println("WriteGeometry: flushing buffer...")
	return w.writer.Flush()
}

// StreamWriter accumulates placed-element geometries supplied
// incrementally (e.g. one per resolved IFC element in a large model) and
// writes them as a single merged STEP product once Finalize is called.
// Until then only the merged triangle buffer is held; Finalize converts all
// of it to STEP entities in one pass.
type StreamWriter struct {
	writer *Writer
	merged *ifcgeom.Geometry
	wg     *sync.WaitGroup
	input  chan *ifcgeom.Geometry
	mutex  sync.Mutex
}

// NewStreamWriter creates a new streaming STEP writer
func NewStreamWriter(path string) (*StreamWriter, chan<- *ifcgeom.Geometry, error) {
	writer, err := NewWriter(path)
	if err != nil {
		return nil, nil, err
	}

	input := make(chan *ifcgeom.Geometry, 100) // buffered channel

	sw := &StreamWriter{
		writer: writer,
		merged: &ifcgeom.Geometry{},
		wg:     new(sync.WaitGroup),
		input:  input,
	}

	// Start goroutine to collect geometries
	sw.wg.Add(1)
	go sw.collect()

	return sw, input, nil
}

// collect gathers geometries from the input channel, merging each one's
// points/indices into the running total.
func (sw *StreamWriter) collect() {
	defer sw.wg.Done()

	for geom := range sw.input {
		sw.mutex.Lock()
		sw.mergeInto(geom)
		sw.mutex.Unlock()
		fmt.Printf("collected %d triangles (total: %d)\n", geom.NumFaces(), sw.merged.NumFaces())
	}
	fmt.Println("geometry collection completed")
}

// mergeInto appends geom's points/normals/indices to sw.merged, offsetting
// indices past the points already accumulated.
func (sw *StreamWriter) mergeInto(geom *ifcgeom.Geometry) {
	base := len(sw.merged.Points)
	sw.merged.Points = append(sw.merged.Points, geom.Points...)
	sw.merged.Normals = append(sw.merged.Normals, geom.Normals...)
	for _, idx := range geom.Indices {
		sw.merged.Indices = append(sw.merged.Indices, base+idx)
	}
}

// Input returns the input channel for geometries
func (sw *StreamWriter) Input() chan<- *ifcgeom.Geometry {
	return sw.input
}

// SetAuthor sets the author information
func (sw *StreamWriter) SetAuthor(name, org string) {
	sw.writer.SetAuthor(name, org)
}

// Finalize writes the merged geometry to the STEP file as a single
// product named name.
func (sw *StreamWriter) Finalize(name string) error {
	fmt.Printf("finalizing STEP file with %d merged triangles\n", sw.merged.NumFaces())

	// Close input channel and wait for collection to finish
	close(sw.input)
	sw.wg.Wait()

	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	fmt.Printf("writing %d triangles to STEP file\n", sw.merged.NumFaces())

	if err := sw.writer.WriteGeometry(sw.merged, name); err != nil {
		sw.writer.Close()
		return err
	}

	return sw.writer.Close()
}
