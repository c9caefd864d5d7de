package jsonio

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/brimdata/blockflow/vector"
)

// Writer writes each row of a block as a JSON object on its own line with
// fields in column order.
type Writer struct {
	io.Closer
	writer *bufio.Writer

	// Use json.Encoder for primitive Values. Have to use
	// json.Encoder instead of json.Marshal because it's
	// the only way to turn off HTML escaping.
	primEnc *json.Encoder
	primBuf bytes.Buffer
}

func NewWriter(writer io.WriteCloser) *Writer {
	w := &Writer{
		Closer: writer,
		writer: bufio.NewWriter(writer),
	}
	w.primEnc = json.NewEncoder(&w.primBuf)
	w.primEnc.SetEscapeHTML(false)
	return w
}

func (w *Writer) Write(block *vector.Block) error {
	for slot := range block.Len() {
		w.writer.WriteByte('{')
		for k, col := range block.Cols {
			if k > 0 {
				w.writer.WriteByte(',')
			}
			w.writePrimitive(block.Names[k])
			w.writer.WriteByte(':')
			w.writeValue(vector.ValueAt(col, slot))
		}
		w.writer.WriteString("}\n")
	}
	return w.writer.Flush()
}

func (w *Writer) writeValue(val vector.Value) {
	kind := val.Kind()
	switch {
	case kind == vector.KindBool:
		w.writePrimitive(val.Bool())
	case kind.IsInt():
		w.writePrimitive(val.Int())
	case kind.IsUint():
		w.writePrimitive(val.Uint())
	case kind.IsFloat():
		w.writePrimitive(val.Float())
	case kind == vector.KindBytes:
		w.writePrimitive("0x" + hex.EncodeToString(val.Bytes()))
	default:
		w.writePrimitive(val.AsString())
	}
}

func (w *Writer) writePrimitive(a any) {
	w.primBuf.Reset()
	if err := w.primEnc.Encode(a); err != nil {
		// NaN and infinities have no JSON representation.
		w.writer.WriteString("null")
		return
	}
	w.writer.Write(bytes.TrimRight(w.primBuf.Bytes(), "\n"))
}
