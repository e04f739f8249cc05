package executable

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/text/encoding/charmap"
)

var log = commonlog.GetLogger("ppl.executable")

// LastPPLC is the newest PPE format version
const LastPPLC = 400

// HeaderSize is the size of the fixed file preamble
const HeaderSize = 48

const preamble = "PCBoard Programming Language Executable"

var (
	ErrInvalidPPEFile        = errors.New("invalid PPE file")
	ErrUnsupportedVersion    = errors.New("unsupported PPE version")
	ErrTooManyDeclarations   = errors.New("too many declarations")
	ErrStringTooLong         = errors.New("string constant too long")
	ErrBufferTooShort        = errors.New("buffer too short")
	ErrFunctionsNotSupported = errors.New("functions and procedures are not supported by this version")
	ErrFunctionHeaderType    = errors.New("function header type mismatch")
)

// Executable is a compiled script: the variable table and the code words
type Executable struct {
	Version   int
	Variables VariableTable
	Script    []int16
}

func New(version int) *Executable {
	return &Executable{Version: version}
}

// Marshal encodes the executable in the PPE container format
func (exe *Executable) Marshal() ([]byte, error) {
	if exe.Version > LastPPLC || exe.Version < 100 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, exe.Version)
	}
	buf := make([]byte, 0, HeaderSize+len(exe.Script)*2+exe.Variables.Len()*20)
	buf = append(buf, preamble...)
	minor := exe.Version % 100
	buf = append(buf, ' ', ' ', byte('0'+exe.Version/100), '.', byte('0'+minor/10), byte('0'+minor%10), '\r', '\n', 0x1A)

	entries := exe.Variables.entries
	if len(entries) > 0xFFFF {
		return nil, fmt.Errorf("%w: %d", ErrTooManyDeclarations, len(entries))
	}
	buf = appendU16(buf, uint16(len(entries)))
	for i := len(entries) - 1; i >= 0; i-- {
		var err error
		if buf, err = entries[i].appendTo(buf, exe.Version); err != nil {
			return nil, err
		}
	}

	code := make([]byte, 0, len(exe.Script)*2)
	for _, w := range exe.Script {
		code = appendU16(code, uint16(w))
	}
	buf = appendU16(buf, uint16(len(code)))

	rle := encodeRLE(code)
	useRLE := len(rle) < len(code) && exe.Version >= 300
	if useRLE {
		code = rle
	}
	encryptChunks(code, exe.Version, useRLE)
	return append(buf, code...), nil
}

func (e *TableEntry) appendTo(buf []byte, version int) ([]byte, error) {
	header := e.Header.Bytes()
	encryptChunks(header, version, false)
	buf = append(buf, header...)

	start := len(buf)
	switch {
	case e.Header.Type == TypeFunction || e.Header.Type == TypeProcedure:
		if version < 340 {
			buf = append(buf, 0, 0)
		}
		fn := e.Function
		if fn == nil {
			fn = &FunctionInfo{}
		}
		buf = append(buf, byte(e.Header.Type), 0, fn.Parameters, fn.Locals)
		buf = appendU16(buf, fn.StartOffset)
		buf = appendU16(buf, uint16(fn.FirstVarID))
		if e.Header.Type == TypeFunction {
			buf = appendU16(buf, uint16(fn.ReturnVar))
		} else {
			buf = appendU16(buf, fn.PassFlags)
		}
		encryptChunks(buf[start:], version, false)

	case e.Header.Type == TypeString:
		if e.Header.Dim > 0 {
			return append(buf, 0, 0), nil
		}
		str := encodeCP437(e.Value.AsString())
		str = append(str, 0)
		if len(str) > 0xFFFF {
			return nil, fmt.Errorf("%w: %d", ErrStringTooLong, len(str))
		}
		buf = appendU16(buf, uint16(len(str)))
		encryptChunks(str, version, false)
		buf = append(buf, str...)

	default:
		if version < 340 {
			buf = append(buf, 0, 0)
		}
		buf = append(buf, byte(e.Header.Type), 0)
		if version <= 100 {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Value.Raw()))
		} else {
			buf = binary.LittleEndian.AppendUint64(buf, e.Value.Raw())
			encryptChunks(buf[start:], version, false)
		}
	}
	return buf, nil
}

// Unmarshal decodes a PPE file. The variable table gets roles and generated names.
func Unmarshal(data []byte) (*Executable, error) {
	if len(data) < HeaderSize || !strings.HasPrefix(string(data), preamble) {
		return nil, ErrInvalidPPEFile
	}
	version := (int(data[40]&15)*10+int(data[41]&15))*100 + int(data[43]&15)*10 + int(data[44]&15)
	if version > LastPPLC {
		return nil, fmt.Errorf("%w: %d (only up to %d)", ErrUnsupportedVersion, version, LastPPLC)
	}

	// decryption works in place; keep the caller's buffer intact
	buf := make([]byte, len(data)-HeaderSize)
	copy(buf, data[HeaderSize:])
	r := &reader{buf: buf}

	exe := New(version)
	if err := exe.Variables.read(r, version); err != nil {
		return nil, err
	}

	codeSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	code := r.rest()
	if version >= 300 {
		useRLE := len(code) != int(codeSize)
		decryptChunks(code, version, useRLE)
		if useRLE {
			code = decodeRLE(code)
		}
	}
	if len(code) != int(codeSize) {
		log.Warningf("decoded code size %d differs from header size %d", len(code), codeSize)
	}
	exe.Script = make([]int16, 0, (len(code)+1)/2)
	for i := 0; i < len(code); i += 2 {
		if i+1 >= len(code) {
			exe.Script = append(exe.Script, int16(code[i]))
			break
		}
		exe.Script = append(exe.Script, int16(binary.LittleEndian.Uint16(code[i:])))
	}

	exe.Variables.assignRoles()
	script := DecodeScript(exe)
	for _, e := range script.Errors {
		log.Warningf("%s", e.Error())
	}
	exe.Variables.analyzeUsage(script)
	exe.Variables.generateNames()
	return exe, nil
}

func (t *VariableTable) read(r *reader, version int) error {
	count, err := r.u16()
	if err != nil {
		return err
	}
	t.entries = make([]TableEntry, count)
	for idx := int(count) - 1; idx >= 0; idx-- {
		raw, err := r.take(VarHeaderSize)
		if err != nil {
			return err
		}
		decryptChunks(raw, version, false)
		header := parseVarHeader(raw)
		if header.ID > int(count) {
			log.Warningf("variable id %d exceeds table size %d", header.ID, count)
		}
		if header.ID != idx+1 {
			log.Warningf("variable id mismatch: %d != %d", header.ID, idx+1)
		}

		entry := TableEntry{Header: header}
		switch header.Type {
		case TypeString:
			n, err := r.u16()
			if err != nil {
				return err
			}
			str, err := r.take(int(n))
			if err != nil {
				return err
			}
			decryptChunks(str, version, false)
			if header.Dim > 0 {
				entry.Value = header.NewValue()
			} else {
				if len(str) > 0 {
					str = str[:len(str)-1]
				}
				entry.Value = NewString(decodeCP437(str))
			}

		case TypeFunction, TypeProcedure:
			if version <= 100 {
				return fmt.Errorf("%w: %d", ErrFunctionsNotSupported, version)
			}
			size := 10
			if version < 340 {
				size = 12
			}
			payload, err := r.take(size)
			if err != nil {
				return err
			}
			decryptChunks(payload, version, false)
			payload = payload[size-10:]
			if t := VariableType(payload[0]); t != header.Type {
				return fmt.Errorf("%w: %s != %s", ErrFunctionHeaderType, t, header.Type)
			}
			fn := &FunctionInfo{
				Parameters:  payload[2],
				Locals:      payload[3],
				StartOffset: u16(payload[4:]),
				FirstVarID:  int16(u16(payload[6:])),
			}
			if header.Type == TypeFunction {
				fn.ReturnVar = int16(u16(payload[8:]))
			} else {
				fn.PassFlags = u16(payload[8:])
			}
			entry.Function = fn
			entry.Value = ZeroValue(header.Type)

		default:
			var raw uint64
			var vtype VariableType
			if version <= 100 {
				payload, err := r.take(8)
				if err != nil {
					return err
				}
				vtype = VariableType(payload[2])
				raw = uint64(binary.LittleEndian.Uint32(payload[4:]))
			} else {
				size := 10
				if version < 340 {
					size = 12
				}
				payload, err := r.take(size)
				if err != nil {
					return err
				}
				decryptChunks(payload, version, false)
				payload = payload[size-10:]
				vtype = VariableType(payload[0])
				raw = binary.LittleEndian.Uint64(payload[2:])
			}
			if vtype != header.Type {
				log.Errorf("variable %d: header type %s and value type %s differ, file is potentially damaged", header.ID, header.Type, vtype)
			}
			if header.Dim > 0 {
				entry.Value = header.NewValue()
			} else {
				entry.Value = FromRaw(header.Type, raw)
			}
		}
		t.entries[idx] = entry
	}
	return nil
}

type reader struct {
	buf []byte
	pos int
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", ErrBufferTooShort, n, r.pos+HeaderSize)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return u16(b), nil
}

func (r *reader) rest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

func u16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func appendU16(buf []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(buf, v) }

func encodeCP437(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.CodePage437.EncodeRune(r); ok {
			out = append(out, b)
		} else {
			out = append(out, byte(r))
		}
	}
	return out
}

func decodeCP437(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.CodePage437.DecodeByte(c))
	}
	return sb.String()
}

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }
