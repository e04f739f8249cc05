package vm

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/funvibe/ppl/internal/executable"
)

// Access modes of FOPEN and FCREATE
const (
	modeRead   = 0
	modeWrite  = 1
	modeRW     = 2
	modeAppend = 4
)

// channel is an open file of the script. err is what FERR reports.
type channel struct {
	path string
	f    *os.File
	r    *bufio.Reader
	err  bool
}

var (
	cp437Decoder = charmap.CodePage437.NewDecoder()
	cp437Encoder = encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder())
)

// decodeText reads file text as UTF-8 when it is valid UTF-8 and as CP437 otherwise
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, err := cp437Decoder.Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

func encodeText(s string) []byte {
	b, err := cp437Encoder.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

func (vm *VM) channel(n int32) (*channel, error) {
	if n < 0 || int(n) >= len(vm.files) || vm.files[n] == nil {
		return nil, newError(KindFileChannelNotOpen, strconv.Itoa(int(n)), nil)
	}
	return vm.files[n], nil
}

// open binds a file to a channel. A file that cannot be opened leaves the
// channel in the error state FERR reports; it is not fatal.
func (vm *VM) open(n int32, path string, mode int32) error {
	if n < 0 || int(n) >= len(vm.files) {
		return newError(KindFileChannelNotOpen, strconv.Itoa(int(n)), nil)
	}
	vm.closeChannel(int(n))
	path = vm.host.ResolvePath(path)

	var (
		f   *os.File
		err error
	)
	switch mode {
	case modeWrite:
		f, err = os.Create(path)
	case modeRW:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	case modeAppend:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	default:
		f, err = os.Open(path)
	}
	ch := &channel{path: path, f: f}
	if err != nil {
		log.Infof("run %s: open %s: %s", vm.runID, path, err)
		ch.err = true
		ch.f = nil
	}
	vm.files[n] = ch
	return nil
}

func (vm *VM) closeChannel(n int) {
	if ch := vm.files[n]; ch != nil {
		if ch.f != nil {
			if err := ch.f.Close(); err != nil {
				log.Warningf("run %s: close %s: %s", vm.runID, ch.path, err)
			}
		}
		vm.files[n] = nil
	}
}

func (vm *VM) closeFiles() {
	for n := range vm.files {
		vm.closeChannel(n)
	}
}

func (ch *channel) reader() *bufio.Reader {
	if ch.r == nil {
		ch.r = bufio.NewReader(ch.f)
	}
	return ch.r
}

// readLine returns the next line without its terminator. At the end of the file
// it returns "" and sets the error flag.
func (ch *channel) readLine() string {
	if ch.f == nil {
		ch.err = true
		return ""
	}
	line, err := ch.reader().ReadBytes('\n')
	if err != nil && len(line) == 0 {
		ch.err = true
		return ""
	}
	ch.err = false
	return decodeText([]byte(strings.TrimRight(string(line), "\r\n")))
}

func (ch *channel) write(b []byte) {
	if ch.f == nil {
		ch.err = true
		return
	}
	if ch.r != nil {
		// drop the read-ahead so the write lands at the logical position
		_, _ = ch.f.Seek(int64(-ch.r.Buffered()), io.SeekCurrent)
		ch.r = nil
	}
	_, err := ch.f.Write(b)
	ch.err = err != nil
}

func (ch *channel) seek(pos int64, whence int) {
	if ch.f == nil {
		ch.err = true
		return
	}
	if whence == io.SeekCurrent && ch.r != nil {
		pos -= int64(ch.r.Buffered())
	}
	ch.r = nil
	_, err := ch.f.Seek(pos, whence)
	ch.err = err != nil
}

func (ch *channel) tell() int64 {
	if ch.f == nil {
		return -1
	}
	off, err := ch.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	if ch.r != nil {
		off -= int64(ch.r.Buffered())
	}
	return off
}

func (ch *channel) read(size int) []byte {
	if ch.f == nil {
		ch.err = true
		return nil
	}
	buf := make([]byte, size)
	n, _ := io.ReadFull(ch.reader(), buf)
	ch.err = n < size
	return buf[:n]
}

// valueBytes is the binary layout FWRITE uses for a value
func valueBytes(v executable.Value, size int) []byte {
	var b []byte
	switch {
	case v.Type.IsString():
		b = encodeText(v.AsString())
	case v.Type == executable.TypeBoolean:
		b = []byte{0}
		if v.AsBool() {
			b[0] = 1
		}
	default:
		b = binary.LittleEndian.AppendUint64(nil, v.Raw())
	}
	if len(b) >= size {
		return b[:size]
	}
	return append(b, make([]byte, size-len(b))...)
}

// bytesValue is the inverse of valueBytes for a destination of type t
func bytesValue(t executable.VariableType, b []byte) executable.Value {
	if t.IsString() {
		if i := strings.IndexByte(string(b), 0); i >= 0 {
			b = b[:i]
		}
		return executable.NewString(decodeText(b)).ConvertTo(t)
	}
	var raw [8]byte
	copy(raw[:], b)
	return executable.FromRaw(t, binary.LittleEndian.Uint64(raw[:]))
}

// fileStatement executes the file channel statements. ok is false for other opcodes.
func (vm *VM) fileStatement(op executable.OpCode, a *args) (bool, error) {
	switch op {
	case executable.OP_FCREATE:
		return true, vm.open(a.num(0), a.str(1), modeWrite)
	case executable.OP_FOPEN:
		return true, vm.open(a.num(0), a.str(1), a.num(2))
	case executable.OP_FAPPEND:
		return true, vm.open(a.num(0), a.str(1), modeAppend)
	case executable.OP_FCLOSE:
		n := a.num(0)
		if n == -1 {
			return true, nil
		}
		if _, err := vm.channel(n); err != nil {
			return true, err
		}
		vm.closeChannel(int(n))
		return true, nil
	case executable.OP_FCLOSEALL:
		vm.closeFiles()
		return true, nil
	case executable.OP_FDEFIN:
		vm.fdIn = int(a.num(0))
		return true, nil
	case executable.OP_FDEFOUT:
		vm.fdOut = int(a.num(0))
		return true, nil
	}

	// the FD variants use the default channel and shift their operands by one
	n, shift := int32(-1), 0
	switch op {
	case executable.OP_FGET, executable.OP_FPUT, executable.OP_FPUTLN, executable.OP_FPUTPAD,
		executable.OP_FREWIND, executable.OP_FSEEK, executable.OP_FFLUSH, executable.OP_FREAD, executable.OP_FWRITE:
		n, shift = a.num(0), 1
	case executable.OP_FDGET, executable.OP_FDREAD:
		n = int32(vm.fdIn)
	case executable.OP_FDPUT, executable.OP_FDPUTLN, executable.OP_FDPUTPAD, executable.OP_FDWRITE:
		n = int32(vm.fdOut)
	default:
		return false, nil
	}
	ch, err := vm.channel(n)
	if err != nil {
		return true, err
	}

	switch op {
	case executable.OP_FGET, executable.OP_FDGET:
		return true, a.set(shift, executable.NewString(ch.readLine()))
	case executable.OP_FPUT, executable.OP_FDPUT:
		ch.write(encodeText(a.join(shift)))
	case executable.OP_FPUTLN, executable.OP_FDPUTLN:
		ch.write(encodeText(a.join(shift) + "\r\n"))
	case executable.OP_FPUTPAD, executable.OP_FDPUTPAD:
		ch.write(encodeText(pad(a.str(shift), int(a.num(shift+1))) + "\r\n"))
	case executable.OP_FREWIND:
		ch.seek(0, io.SeekStart)
	case executable.OP_FSEEK:
		ch.seek(int64(a.num(1)), int(a.num(2)))
	case executable.OP_FFLUSH:
		if ch.f != nil {
			ch.err = ch.f.Sync() != nil
		}
	case executable.OP_FREAD, executable.OP_FDREAD:
		size := int(a.num(shift + 1))
		target := a.value(shift)
		return true, a.set(shift, bytesValue(target.Type, ch.read(size)))
	case executable.OP_FWRITE, executable.OP_FDWRITE:
		ch.write(valueBytes(a.value(shift), int(a.num(shift+1))))
	}
	return true, nil
}

// pad left aligns s in a field of width n, truncating longer text
func pad(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
