package gettext

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Catalog fixtures shared between the in-package format tests and the
// external test package.

// MoMessage is a raw catalog pair for the test encoder; plural messages use
// the NUL-joined on-disk representation directly.
type MoMessage struct {
	ID  string
	Str string
}

// EncodeMo assembles a compiled catalog the way msgfmt lays it out: 28-byte
// header, msgid descriptor table, msgstr descriptor table, then the
// NUL-terminated string data.
func EncodeMo(order binary.ByteOrder, msgs []MoMessage) []byte {
	count := uint32(len(msgs))
	idTableOff := uint32(28)
	strTableOff := idTableOff + count*8
	dataOff := strTableOff + count*8

	type descriptor struct{ length, offset uint32 }
	ids := make([]descriptor, count)
	strs := make([]descriptor, count)

	var data bytes.Buffer
	for i, m := range msgs {
		ids[i] = descriptor{uint32(len(m.ID)), dataOff + uint32(data.Len())}
		data.WriteString(m.ID)
		data.WriteByte(0)
		strs[i] = descriptor{uint32(len(m.Str)), dataOff + uint32(data.Len())}
		data.WriteString(m.Str)
		data.WriteByte(0)
	}

	var buf bytes.Buffer
	put := func(v uint32) {
		_ = binary.Write(&buf, order, v)
	}
	put(moMagicLittle) // written in the target order, read back as-is or swapped
	put(0)             // revision
	put(count)
	put(idTableOff)
	put(strTableOff)
	put(0) // hash table size
	put(0) // hash table offset
	for _, d := range ids {
		put(d.length)
		put(d.offset)
	}
	for _, d := range strs {
		put(d.length)
		put(d.offset)
	}
	buf.Write(data.Bytes())
	return buf.Bytes()
}

// WriteMoFile compiles msgs into <root>/<lang>/LC_MESSAGES/<domain>.mo.
func WriteMoFile(t *testing.T, root, lang, domain string, msgs []MoMessage) string {
	t.Helper()

	dir := filepath.Join(root, lang, "LC_MESSAGES")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, domain+".mo")
	require.NoError(t, os.WriteFile(path, EncodeMo(binary.LittleEndian, msgs), 0o644))
	return path
}
