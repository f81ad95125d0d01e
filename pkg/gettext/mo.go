package gettext

import (
	"encoding/binary"
	"errors"
	"os"
	"strings"
)

// GNU .mo magic numbers; which one appears first in the file decides the
// byte order of everything after it.
const (
	moMagicLittle = 0x950412de
	moMagicBig    = 0xde120495
)

// moHeaderSize covers magic, revision, entry count and the two table offsets.
const moHeaderSize = 20

// parseMoFile reads a compiled catalog from disk.
func parseMoFile(path string) (map[Key]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadMo, err)
	}
	return parseMo(data)
}

// parseMo decodes the GNU .mo binary format into tagged catalog entries.
// Pluralized messages (NUL-separated msgid and msgstr forms) become one
// entry per form, keyed by the singular msgid and the form index; plain
// messages become singular entries. The header block arrives as the
// singular entry for the empty msgid, same as every other message.
func parseMo(data []byte) (map[Key]string, error) {
	if len(data) < moHeaderSize {
		return nil, ErrTruncatedFile
	}

	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[0:4]) {
	case moMagicLittle:
		order = binary.LittleEndian
	case moMagicBig:
		order = binary.BigEndian
	default:
		return nil, ErrBadMagic
	}

	count := order.Uint32(data[8:12])
	idTable := order.Uint32(data[12:16])
	strTable := order.Uint32(data[16:20])

	readString := func(table, index uint32) (string, error) {
		off := uint64(table) + uint64(index)*8
		if off+8 > uint64(len(data)) {
			return "", ErrTruncatedFile
		}
		length := order.Uint32(data[off : off+4])
		start := order.Uint32(data[off+4 : off+8])
		end := uint64(start) + uint64(length)
		if end > uint64(len(data)) {
			return "", ErrTruncatedFile
		}
		return string(data[start:end]), nil
	}

	entries := make(map[Key]string, count)
	for i := uint32(0); i < count; i++ {
		msgid, err := readString(idTable, i)
		if err != nil {
			return nil, err
		}
		msgstr, err := readString(strTable, i)
		if err != nil {
			return nil, err
		}

		if singular, _, plural := strings.Cut(msgid, "\x00"); plural {
			for idx, form := range strings.Split(msgstr, "\x00") {
				entries[PluralForm(singular, idx)] = form
			}
		} else {
			entries[Singular(msgid)] = msgstr
		}
	}
	return entries, nil
}
