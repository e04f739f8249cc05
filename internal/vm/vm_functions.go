package vm

import (
	"context"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/funvibe/ppl/internal/executable"
)

// Input masks the MASK_* functions return
const (
	maskAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	maskFile  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&'()-.@^_`{}~"
	maskPath  = maskFile + ":\\/"
	maskPwd   = maskAlpha + "0123456789"
)

// conversions maps the TO* functions to their target type
var conversions = map[executable.FuncOpCode]executable.VariableType{
	executable.FN_TOSTRING:   executable.TypeString,
	executable.FN_TOBIGSTR:   executable.TypeBigStr,
	executable.FN_TOBOOLEAN:  executable.TypeBoolean,
	executable.FN_TOBYTE:     executable.TypeByte,
	executable.FN_TODATE:     executable.TypeDate,
	executable.FN_TODDATE:    executable.TypeDDate,
	executable.FN_TODREAL:    executable.TypeDouble,
	executable.FN_TOEDATE:    executable.TypeEDate,
	executable.FN_TOINTEGER:  executable.TypeInteger,
	executable.FN_TOMONEY:    executable.TypeMoney,
	executable.FN_TOREAL:     executable.TypeFloat,
	executable.FN_TOSBYTE:    executable.TypeSByte,
	executable.FN_TOSWORD:    executable.TypeSWord,
	executable.FN_TOTIME:     executable.TypeTime,
	executable.FN_TOUNSIGNED: executable.TypeUnsigned,
	executable.FN_TOWORD:     executable.TypeWord,
}

func (vm *VM) function(ctx context.Context, op executable.FuncOpCode, list []executable.PPEExpr) (executable.Value, error) {
	a := newArgs(vm, ctx, list)
	res, err := vm.callNative(op, a)
	if a.err != nil {
		return executable.Value{}, a.err
	}
	return res, err
}

func (vm *VM) callNative(op executable.FuncOpCode, a *args) (executable.Value, error) {
	if t, ok := conversions[op]; ok {
		return a.value(0).ConvertTo(t), nil
	}

	switch op {
	case executable.FN_LEN:
		v := a.value(0)
		if arr := v.Array(); arr != nil {
			return executable.NewInt(int32(len(arr.Elems))), nil
		}
		return executable.NewInt(int32(len([]rune(v.AsString())))), nil
	case executable.FN_LOWER:
		return executable.NewString(strings.ToLower(a.str(0))), nil
	case executable.FN_UPPER:
		return executable.NewString(strings.ToUpper(a.str(0))), nil
	case executable.FN_MID:
		return executable.NewString(mid(a.str(0), int(a.num(1)), int(a.num(2)))), nil
	case executable.FN_LEFT:
		return executable.NewString(pad(a.str(0), max(0, int(a.num(1))))), nil
	case executable.FN_RIGHT:
		return executable.NewString(right(a.str(0), int(a.num(1)))), nil
	case executable.FN_SPACE:
		return executable.NewString(strings.Repeat(" ", max(0, int(a.num(0))))), nil
	case executable.FN_CHR:
		return executable.NewString(chr(a.num(0))), nil
	case executable.FN_ASC:
		return executable.NewInt(asc(a.str(0))), nil
	case executable.FN_INSTR:
		return executable.NewInt(instr(a.str(0), a.str(1), false)), nil
	case executable.FN_INSTRR:
		return executable.NewInt(instr(a.str(0), a.str(1), true)), nil
	case executable.FN_LTRIM, executable.FN_RTRIM, executable.FN_TRIM:
		return trim(op, a.value(0), a.str(1)), nil
	case executable.FN_REPLACE:
		return executable.NewString(replaceChar(a.str(0), a.str(1), a.str(2))), nil
	case executable.FN_STRIP:
		return executable.NewString(stripChar(a.str(0), a.str(1))), nil
	case executable.FN_REPLACESTR:
		return executable.NewString(replaceAll(a.str(0), a.str(1), a.str(2))), nil
	case executable.FN_STRIPSTR:
		return executable.NewString(replaceAll(a.str(0), a.str(1), "")), nil
	case executable.FN_STRIPATX:
		return executable.NewString(stripAtX(a.str(0))), nil
	case executable.FN_MIXED:
		return executable.NewString(mixedCase(a.str(0))), nil

	case executable.FN_RANDOM:
		upper := a.num(0)
		if upper <= 0 {
			return executable.NewInt(0), nil
		}
		return executable.NewInt(vm.rng.Int32N(upper)), nil
	case executable.FN_ABS:
		n := a.num(0)
		if n < 0 {
			n = -n
		}
		return executable.NewInt(n), nil
	case executable.FN_BAND:
		return executable.NewInt(a.num(0) & a.num(1)), nil
	case executable.FN_BOR:
		return executable.NewInt(a.num(0) | a.num(1)), nil
	case executable.FN_BXOR:
		return executable.NewInt(a.num(0) ^ a.num(1)), nil
	case executable.FN_BNOT:
		return executable.NewInt(^a.num(0)), nil
	case executable.FN_ISBITSET:
		return executable.NewBool(a.num(0)&(1<<(uint(a.num(1))&31)) != 0), nil
	case executable.FN_B2W:
		return executable.NewWord(uint16(a.num(0))&0xFF | uint16(a.num(1))<<8), nil
	case executable.FN_I2S:
		base := int(a.num(1))
		if base < 2 || base > 36 {
			return executable.NewString(""), nil
		}
		return executable.NewString(strings.ToUpper(strconv.FormatInt(int64(a.num(0)), base))), nil
	case executable.FN_S2I:
		s, base := strings.TrimSpace(a.str(0)), int(a.num(1))
		if s == "" || base < 2 || base > 36 {
			return executable.NewInt(0), nil
		}
		n, err := strconv.ParseInt(s, base, 32)
		if err != nil {
			log.Debugf("run %s: S2I %q: %s", vm.runID, s, err)
			return executable.NewInt(0), nil
		}
		return executable.NewInt(int32(n)), nil
	case executable.FN_FMTREAL:
		return executable.NewString(fmtReal(a.value(0).AsDouble(), int(a.num(1)), int(a.num(2)))), nil
	case executable.FN_CRC32:
		return vm.crc(a.value(0).AsBool(), a.str(1)), nil

	case executable.FN_DATE:
		return executable.NewDate(executable.Today()), nil
	case executable.FN_TIME:
		return executable.NewTime(executable.SecondsSinceMidnight()), nil
	case executable.FN_YEAR:
		return executable.NewInt(int32(fullYear(executable.JulianToDate(a.num(0))))), nil
	case executable.FN_MONTH:
		return executable.NewInt(int32(executable.JulianToDate(a.num(0)).Month)), nil
	case executable.FN_DAY:
		return executable.NewInt(int32(executable.JulianToDate(a.num(0)).Day)), nil
	case executable.FN_DOW:
		return executable.NewInt(dayOfWeek(a.num(0))), nil
	case executable.FN_HOUR:
		return executable.NewInt(a.num(0) / 3600), nil
	case executable.FN_MIN:
		return executable.NewInt(a.num(0) % 3600 / 60), nil
	case executable.FN_SEC:
		return executable.NewInt(a.num(0) % 60), nil
	case executable.FN_TIMEAP:
		return executable.NewString(timeAP(a.num(0))), nil
	case executable.FN_MKDATE:
		d := executable.Date{Year: int(a.num(0)), Month: int(a.num(1)), Day: int(a.num(2))}
		return executable.NewDate(executable.DateToJulian(d)), nil
	case executable.FN_VALDATE:
		return executable.NewBool(validDate(a.str(0))), nil
	case executable.FN_VALTIME:
		return executable.NewBool(validTime(a.str(0))), nil

	case executable.FN_VER:
		return executable.NewInt(int32(vm.exe.Version)), nil
	case executable.FN_YESCHAR:
		return executable.NewString("Y"), nil
	case executable.FN_NOCHAR:
		return executable.NewString("N"), nil
	case executable.FN_MASK_PWD:
		return executable.NewString(maskPwd), nil
	case executable.FN_MASK_ALPHA:
		return executable.NewString(maskAlpha), nil
	case executable.FN_MASK_NUM:
		return executable.NewString(MaskNum), nil
	case executable.FN_MASK_ALNUM, executable.FN_MASK_ASCII:
		return executable.NewString(MaskAlnum), nil
	case executable.FN_MASK_FILE:
		return executable.NewString(maskFile), nil
	case executable.FN_MASK_PATH:
		return executable.NewString(maskPath), nil

	case executable.FN_GETTOKEN:
		return executable.NewString(vm.nextToken()), nil
	case executable.FN_TOKENSTR:
		s := strings.Join(vm.tokens, ";")
		vm.tokens = nil
		return executable.NewString(s), nil
	case executable.FN_TOKCOUNT:
		return executable.NewInt(int32(len(vm.tokens))), nil

	case executable.FN_GETENV:
		name := strings.ToUpper(strings.TrimSpace(a.str(0)))
		if v, ok := vm.env[name]; ok {
			return executable.NewString(v), nil
		}
		return executable.NewString(os.Getenv(name)), nil
	case executable.FN_CWD:
		dir, err := os.Getwd()
		if err != nil {
			return executable.NewString(""), nil
		}
		return executable.NewString(dir), nil
	case executable.FN_OS:
		return executable.NewInt(osCode()), nil
	case executable.FN_DBGLEVEL:
		return executable.NewInt(vm.debugLevel), nil

	case executable.FN_INKEY, executable.FN_KINKEY, executable.FN_MINKEY, executable.FN_TINKEY:
		key, err := vm.host.ReadKey()
		if err != nil {
			return executable.Value{}, err
		}
		return executable.NewString(key), nil

	case executable.FN_FERR:
		ch, err := vm.channel(a.num(0))
		if err != nil {
			return executable.NewBool(true), nil
		}
		return executable.NewBool(ch.err), nil
	case executable.FN_FTELL:
		ch, err := vm.channel(a.num(0))
		if err != nil {
			return executable.Value{}, err
		}
		return executable.NewInt(int32(ch.tell())), nil
	case executable.FN_EXIST:
		_, err := os.Stat(vm.host.ResolvePath(a.str(0)))
		return executable.NewBool(err == nil), nil
	case executable.FN_READLINE:
		return executable.NewString(vm.readLine(a.str(0), int(a.num(1)))), nil
	case executable.FN_FILEINF:
		return vm.fileInfo(a.str(0), a.num(1)), nil
	}
	return vm.extendedFunction(op, a)
}

func (vm *VM) extendedFunction(op executable.FuncOpCode, a *args) (executable.Value, error) {
	if vm.ext == nil {
		return executable.Value{}, newError(KindFunctionCall, op.String(), ErrUnsupported)
	}
	vals := a.all()
	if a.err != nil {
		return executable.Value{}, a.err
	}
	res, err := vm.ext.CallFunction(op, vals)
	if err != nil {
		return executable.Value{}, newError(KindFunctionCall, op.String(), err)
	}
	return res, nil
}

// mid returns count characters from the 1-based position pos. Positions
// before the start of the string produce leading spaces.
func mid(s string, pos, count int) string {
	if count <= 0 {
		return ""
	}
	var sb strings.Builder
	pos--
	for pos < 0 && count > 0 {
		sb.WriteByte(' ')
		pos++
		count--
	}
	r := []rune(s)
	if pos < len(r) {
		sb.WriteString(string(r[pos:min(len(r), pos+count)]))
	}
	return sb.String()
}

// right returns the last n characters, left padded when s is shorter
func right(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if n > len(r) {
		return strings.Repeat(" ", n-len(r)) + s
	}
	return string(r[len(r)-n:])
}

func chr(c int32) string {
	switch {
	case c <= 0:
		return ""
	case c > 255:
		return " "
	}
	return decodeText([]byte{byte(c)})
}

func asc(s string) int32 {
	if s == "" {
		return 0
	}
	r := []rune(s)
	if b := encodeText(string(r[0])); len(b) == 1 && r[0] > 127 {
		return int32(b[0])
	}
	return r[0]
}

// instr returns the 1-based character position of sub in s, or 0
func instr(s, sub string, last bool) int32 {
	if sub == "" {
		return 0
	}
	i := strings.Index(s, sub)
	if last {
		i = strings.LastIndex(s, sub)
	}
	if i < 0 {
		return 0
	}
	return int32(len([]rune(s[:i]))) + 1
}

// trim removes the first character of chars from one or both ends.
// An empty chars returns v unchanged.
func trim(op executable.FuncOpCode, v executable.Value, chars string) executable.Value {
	if chars == "" {
		return v
	}
	c := string([]rune(chars)[0])
	s := v.AsString()
	switch op {
	case executable.FN_LTRIM:
		s = strings.TrimLeft(s, c)
	case executable.FN_RTRIM:
		s = strings.TrimRight(s, c)
	default:
		s = strings.Trim(s, c)
	}
	return executable.NewString(s)
}

func replaceChar(s, old, repl string) string {
	if old == "" {
		return s
	}
	if repl == "" {
		return ""
	}
	o, n := []rune(old)[0], []rune(repl)[0]
	return strings.Map(func(r rune) rune {
		if r == o {
			return n
		}
		return r
	}, s)
}

func stripChar(s, ch string) string {
	if ch == "" {
		return ""
	}
	return strings.ReplaceAll(s, string([]rune(ch)[0]), "")
}

func replaceAll(s, search, repl string) string {
	if search == "" {
		return s
	}
	return strings.ReplaceAll(s, search, repl)
}

func isHex(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// stripAtX removes @Xnn colour codes
func stripAtX(s string) string {
	var sb strings.Builder
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if r[i] == '@' && i+3 < len(r) && r[i+1] == 'X' && isHex(r[i+2]) && isHex(r[i+3]) {
			i += 3
			continue
		}
		sb.WriteRune(r[i])
	}
	return sb.String()
}

// mixedCase capitalizes the first letter of every word and lowers the rest.
// Roman numerals II and III and the Mc prefix keep their usual spelling.
func mixedCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		switch {
		case w == "ii" || w == "iii":
			words[i] = strings.ToUpper(w)
		case strings.HasPrefix(w, "mc") && len(w) > 2:
			r := []rune(w)
			words[i] = "Mc" + string(unicode.ToUpper(r[2])) + string(r[3:])
		case w != "":
			r := []rune(w)
			words[i] = string(unicode.ToUpper(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}

// fmtReal right aligns v in width columns with decimals digits
func fmtReal(v float64, width, decimals int) string {
	return fmt.Sprintf("%*.*f", max(0, width), max(0, decimals), v)
}

func fullYear(d executable.Date) int {
	if d == (executable.Date{}) {
		return 0
	}
	if d.Year < 79 {
		return 2000 + d.Year
	}
	return 1900 + d.Year
}

func dayOfWeek(julian int32) int32 {
	d := executable.JulianToDate(julian)
	if d == (executable.Date{}) {
		return 0
	}
	t := time.Date(fullYear(d), time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return int32(t.Weekday())
}

// timeAP renders seconds since midnight on a 12 hour clock
func timeAP(seconds int32) string {
	h, m, s := seconds/3600%24, seconds%3600/60, seconds%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", h, m, s, suffix)
}

func validDate(s string) bool {
	d := executable.ParseDate(s)
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day
}

func validTime(s string) bool {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	limits := []int{24, 60, 60}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n >= limits[i] {
			return false
		}
	}
	return true
}

// osCode reports the platform: 1 DOS, 2 OS/2, 3 Windows, 4 Linux, 5 macOS
func osCode() int32 {
	switch runtime.GOOS {
	case "windows":
		return 3
	case "linux":
		return 4
	case "darwin":
		return 5
	}
	return 0
}

func (vm *VM) crc(file bool, param string) executable.Value {
	data := encodeText(param)
	if file {
		b, err := os.ReadFile(vm.host.ResolvePath(param))
		if err != nil {
			log.Infof("run %s: CRC32 %s: %s", vm.runID, param, err)
			return executable.NewUnsigned(0)
		}
		data = b
	}
	return executable.NewUnsigned(uint64(crc32.ChecksumIEEE(data)))
}

// readLine returns line n (1-based) of a text file, or "" when there is none
func (vm *VM) readLine(name string, n int) string {
	path := vm.host.ResolvePath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Infof("run %s: READLINE %s: %s", vm.runID, path, err)
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(decodeText(data), "\r\n", "\n"), "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// fileInfo answers FILEINF: 1 exists, 2 date, 3 time, 4 size, 5 attributes,
// 6 drive, 7 directory, 8 name, 9 name without extension
func (vm *VM) fileInfo(name string, item int32) executable.Value {
	path := vm.host.ResolvePath(name)
	st, err := os.Stat(path)
	switch item {
	case 1:
		return executable.NewBool(err == nil)
	case 2:
		if err != nil {
			return executable.NewDate(0)
		}
		m := st.ModTime()
		return executable.NewDate(executable.DateToJulian(executable.Date{Month: int(m.Month()), Day: m.Day(), Year: m.Year()}))
	case 3:
		if err != nil {
			return executable.NewTime(0)
		}
		m := st.ModTime()
		return executable.NewTime(int32(m.Hour()*3600 + m.Minute()*60 + m.Second()))
	case 4:
		if err != nil {
			return executable.NewInt(0)
		}
		return executable.NewInt(int32(st.Size()))
	case 5:
		if err == nil && st.IsDir() {
			return executable.NewInt(0x10)
		}
		return executable.NewInt(0)
	case 6:
		return executable.NewString(filepath.VolumeName(path))
	case 7:
		return executable.NewString(filepath.Dir(path))
	case 8:
		return executable.NewString(filepath.Base(path))
	case 9:
		base := filepath.Base(path)
		return executable.NewString(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	log.Warningf("run %s: FILEINF item %d", vm.runID, item)
	return executable.NewInt(0)
}
