package executable

// FuncOpCode indexes the function table. It is stored negated in the expression stream.
type FuncOpCode int16

const (
	FN_END FuncOpCode = iota
	FN_CPAR
	FN_UPLUS
	FN_UMINUS
	FN_EXP
	FN_TIMES
	FN_DIVIDE
	FN_MOD
	FN_PLUS
	FN_MINUS
	FN_EQ
	FN_NE
	FN_LT
	FN_LE
	FN_GT
	FN_GE
	FN_NOT
	FN_AND
	FN_OR
	FN_OPAR
	FN_LEN
	FN_LOWER
	FN_UPPER
	FN_MID
	FN_LEFT
	FN_RIGHT
	FN_SPACE
	FN_FERR
	FN_CHR
	FN_ASC
	FN_INSTR
	FN_ABORT
	FN_LTRIM
	FN_RTRIM
	FN_TRIM
	FN_RANDOM
	FN_DATE
	FN_TIME
	FN_U_NAME
	FN_U_LDATE
	FN_U_LTIME
	FN_U_LDIR
	FN_U_LOGONS
	FN_U_FUL
	FN_U_FDL
	FN_U_BDLDAY
	FN_U_TIMEON
	FN_U_BDL
	FN_U_BUL
	FN_YEAR
	FN_MONTH
	FN_DAY
	FN_DOW
	FN_HOUR
	FN_MIN
	FN_SEC
	FN_TIMEAP
	FN_VER
	FN_NOCHAR
	FN_YESCHAR
	FN_STRIPATX
	FN_REPLACE
	FN_STRIP
	FN_INKEY
	FN_TOSTRING
	FN_MASK_PWD
	FN_MASK_ALPHA
	FN_MASK_NUM
	FN_MASK_ALNUM
	FN_MASK_FILE
	FN_MASK_PATH
	FN_MASK_ASCII
	FN_CURCONF
	FN_PCBDAT
	FN_PPEPATH
	FN_VALDATE
	FN_VALTIME
	FN_U_MSGRD
	FN_U_MSGWR
	FN_PCBNODE
	FN_READLINE
	FN_SYSOPSEC
	FN_ONLOCAL
	FN_UN_STAT
	FN_UN_NAME
	FN_UN_CITY
	FN_UN_OPER
	FN_CURSEC
	FN_GETTOKEN
	FN_MINLEFT
	FN_MINON
	FN_GETENV
	FN_CALLID
	FN_REGAL
	FN_REGAH
	FN_REGBL
	FN_REGBH
	FN_REGCL
	FN_REGCH
	FN_REGDL
	FN_REGDH
	FN_REGAX
	FN_REGBX
	FN_REGCX
	FN_REGDX
	FN_REGSI
	FN_REGDI
	FN_REGF
	FN_REGCF
	FN_REGDS
	FN_REGES
	FN_B2W
	FN_PEEKB
	FN_PEEKW
	FN_MKADDR
	FN_EXIST
	FN_I2S
	FN_S2I
	FN_CARRIER
	FN_TOKENSTR
	FN_CDON
	FN_LANGEXT
	FN_ANSION
	FN_VALCC
	FN_FMTCC
	FN_CCTYPE
	FN_GETX
	FN_GETY
	FN_BAND
	FN_BOR
	FN_BXOR
	FN_BNOT
	FN_U_PWDHIST
	FN_U_PWDLC
	FN_U_PWDTC
	FN_U_STAT
	FN_DEFCOLOR
	FN_ABS
	FN_GRAFMODE
	FN_PSA
	FN_FILEINF
	FN_PPENAME
	FN_MKDATE
	FN_CURCOLOR
	FN_KINKEY
	FN_MINKEY
	FN_MAXNODE
	FN_SLPATH
	FN_HELPPATH
	FN_TEMPPATH
	FN_MODEM
	FN_LOGGEDON
	FN_CALLNUM
	FN_MGETBYTE
	FN_TOKCOUNT
	FN_U_RECNUM
	FN_U_INCONF
	FN_PEEKDW
	FN_DBGLEVEL
	FN_SCRTEXT
	FN_SHOWSTAT
	FN_PAGESTAT
	FN_REPLACESTR
	FN_STRIPSTR
	FN_TOBIGSTR
	FN_TOBOOLEAN
	FN_TOBYTE
	FN_TODATE
	FN_TODREAL
	FN_TOEDATE
	FN_TOINTEGER
	FN_TOMONEY
	FN_TOREAL
	FN_TOSBYTE
	FN_TOSWORD
	FN_TOTIME
	FN_TOUNSIGNED
	FN_TOWORD
	FN_MIXED
	FN_ALIAS
	FN_CONFREG
	FN_CONFEXP
	FN_CONFSEL
	FN_CONFSYS
	FN_CONFMW
	FN_LPRINTED
	FN_ISNONSTOP
	FN_ERRCORRECT
	FN_CONFALIAS
	FN_USERALIAS
	FN_CURUSER
	FN_U_LMR
	FN_CHATSTAT
	FN_DEFANS
	FN_LASTANS
	FN_MEGANUM
	FN_EVTTIMEADJ
	FN_ISBITSET
	FN_FMTREAL
	FN_FLAGCNT
	FN_KBDBUFSIZE
	FN_PPLBUFSIZE
	FN_KBDFILUSED
	FN_LOMSGNUM
	FN_HIMSGNUM
	FN_DRIVESPACE
	FN_OUTBYTES
	FN_HICONFNUM
	FN_INBYTES
	FN_CRC32
	FN_PCBMAC
	FN_ACTMSGNUM
	FN_STACKLEFT
	FN_STACKERR
	FN_DGETALIAS
	FN_DBOF
	FN_DCHANGED
	FN_DDECIMALS
	FN_DDELETED
	FN_DEOF
	FN_DERR
	FN_DFIELDS
	FN_DLENGTH
	FN_DNAME
	FN_DRECCOUNT
	FN_DRECNO
	FN_DTYPE
	FN_FNEXT
	FN_DNEXT
	FN_TODDATE
	FN_DCLOSEALL
	FN_DOPEN
	FN_DCLOSE
	FN_DSETALIAS
	FN_DPACK
	FN_DLOCKF
	FN_DLOCK
	FN_DLOCKR
	FN_DUNLOCK
	FN_DNOPEN
	FN_DNCLOSE
	FN_DNCLOSEALL
	FN_DNEW
	FN_DADD
	FN_DAPPEND
	FN_DTOP
	FN_DGO
	FN_DBOTTOM
	FN_DSKIP
	FN_DBLANK
	FN_DDELETE
	FN_DRECALL
	FN_DTAG
	FN_DSEEK
	FN_DFBLANK
	FN_DGET
	FN_DPUT
	FN_DFCOPY
	FN_DSELECT
	FN_DCHKSTAT
	FN_PCBACCOUNT
	FN_PCBACCSTAT
	FN_DERRMSG
	FN_ACCOUNT
	FN_SCANMSGHDR
	FN_CHECKRIP
	FN_RIPVER
	FN_QWKLIMITS
	FN_FINDFIRST
	FN_FINDNEXT
	FN_USELMRS
	FN_CONFINFO
	FN_TINKEY
	FN_CWD
	FN_INSTRR
	FN_FDORDAKA
	FN_FDORDORG
	FN_FDORDAREA
	FN_FDOQRD
	FN_GETDRIVE
	FN_SETDRIVE
	FN_BS2I
	FN_BD2I
	FN_I2BS
	FN_I2BD
	FN_FTELL
	FN_OS
	FN_SHORT_DESC
	FN_GETBANKBAL
	FN_GETMSGHDR
	FN_SETMSGHDR
	FN_MEMBERREFERENCE
	FN_MEMBERCALL
	FN_NEWCONFINFO
	FN_AREAID
)

var FunctionDefinitions = [...]FunctionDef{
	{Name: "END", Opcode: FN_END, Version: 100, Sig: FuncInvalid},
	{Name: "CPAR", Opcode: FN_CPAR, Version: 100, Sig: FuncInvalid},
	{Name: "UPLUS", Opcode: FN_UPLUS, Version: 100, Sig: FuncUnaryOp},
	{Name: "UMINUS", Opcode: FN_UMINUS, Version: 100, Sig: FuncUnaryOp},
	{Name: "EXP", Opcode: FN_EXP, Version: 100, Sig: FuncBinaryOp},
	{Name: "TIMES", Opcode: FN_TIMES, Version: 100, Sig: FuncBinaryOp},
	{Name: "DIVIDE", Opcode: FN_DIVIDE, Version: 100, Sig: FuncBinaryOp},
	{Name: "MOD", Opcode: FN_MOD, Version: 100, Sig: FuncBinaryOp},
	{Name: "PLUS", Opcode: FN_PLUS, Version: 100, Sig: FuncBinaryOp},
	{Name: "MINUS", Opcode: FN_MINUS, Version: 100, Sig: FuncBinaryOp},
	{Name: "EQ", Opcode: FN_EQ, Version: 100, Sig: FuncBinaryOp},
	{Name: "NE", Opcode: FN_NE, Version: 100, Sig: FuncBinaryOp},
	{Name: "LT", Opcode: FN_LT, Version: 100, Sig: FuncBinaryOp},
	{Name: "LE", Opcode: FN_LE, Version: 100, Sig: FuncBinaryOp},
	{Name: "GT", Opcode: FN_GT, Version: 100, Sig: FuncBinaryOp},
	{Name: "GE", Opcode: FN_GE, Version: 100, Sig: FuncBinaryOp},
	{Name: "NOT", Opcode: FN_NOT, Version: 100, Sig: FuncUnaryOp},
	{Name: "AND", Opcode: FN_AND, Version: 100, Sig: FuncBinaryOp},
	{Name: "OR", Opcode: FN_OR, Version: 100, Sig: FuncBinaryOp},
	{Name: "OPAR", Opcode: FN_OPAR, Version: 100, Sig: FuncInvalid},
	{Name: "LEN", Opcode: FN_LEN, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "LOWER", Opcode: FN_LOWER, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "UPPER", Opcode: FN_UPPER, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MID", Opcode: FN_MID, Version: 100, Sig: FuncFixedParameters, Arity: 3},
	{Name: "LEFT", Opcode: FN_LEFT, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "RIGHT", Opcode: FN_RIGHT, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "SPACE", Opcode: FN_SPACE, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FERR", Opcode: FN_FERR, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CHR", Opcode: FN_CHR, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "ASC", Opcode: FN_ASC, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "INSTR", Opcode: FN_INSTR, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "ABORT", Opcode: FN_ABORT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "LTRIM", Opcode: FN_LTRIM, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "RTRIM", Opcode: FN_RTRIM, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "TRIM", Opcode: FN_TRIM, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "RANDOM", Opcode: FN_RANDOM, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DATE", Opcode: FN_DATE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TIME", Opcode: FN_TIME, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_NAME", Opcode: FN_U_NAME, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_LDATE", Opcode: FN_U_LDATE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_LTIME", Opcode: FN_U_LTIME, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_LDIR", Opcode: FN_U_LDIR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_LOGONS", Opcode: FN_U_LOGONS, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_FUL", Opcode: FN_U_FUL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_FDL", Opcode: FN_U_FDL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_BDLDAY", Opcode: FN_U_BDLDAY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_TIMEON", Opcode: FN_U_TIMEON, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_BDL", Opcode: FN_U_BDL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_BUL", Opcode: FN_U_BUL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "YEAR", Opcode: FN_YEAR, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MONTH", Opcode: FN_MONTH, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DAY", Opcode: FN_DAY, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DOW", Opcode: FN_DOW, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "HOUR", Opcode: FN_HOUR, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MIN", Opcode: FN_MIN, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "SEC", Opcode: FN_SEC, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TIMEAP", Opcode: FN_TIMEAP, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "VER", Opcode: FN_VER, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "NOCHAR", Opcode: FN_NOCHAR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "YESCHAR", Opcode: FN_YESCHAR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "STRIPATX", Opcode: FN_STRIPATX, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "REPLACE", Opcode: FN_REPLACE, Version: 100, Sig: FuncFixedParameters, Arity: 3},
	{Name: "STRIP", Opcode: FN_STRIP, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "INKEY", Opcode: FN_INKEY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TOSTRING", Opcode: FN_TOSTRING, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MASK_PWD", Opcode: FN_MASK_PWD, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_ALPHA", Opcode: FN_MASK_ALPHA, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_NUM", Opcode: FN_MASK_NUM, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_ALNUM", Opcode: FN_MASK_ALNUM, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_FILE", Opcode: FN_MASK_FILE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_PATH", Opcode: FN_MASK_PATH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MASK_ASCII", Opcode: FN_MASK_ASCII, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CURCONF", Opcode: FN_CURCONF, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PCBDAT", Opcode: FN_PCBDAT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PPEPATH", Opcode: FN_PPEPATH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "VALDATE", Opcode: FN_VALDATE, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "VALTIME", Opcode: FN_VALTIME, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "U_MSGRD", Opcode: FN_U_MSGRD, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_MSGWR", Opcode: FN_U_MSGWR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PCBNODE", Opcode: FN_PCBNODE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "READLINE", Opcode: FN_READLINE, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "SYSOPSEC", Opcode: FN_SYSOPSEC, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ONLOCAL", Opcode: FN_ONLOCAL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "UN_STAT", Opcode: FN_UN_STAT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "UN_NAME", Opcode: FN_UN_NAME, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "UN_CITY", Opcode: FN_UN_CITY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "UN_OPER", Opcode: FN_UN_OPER, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CURSEC", Opcode: FN_CURSEC, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "GETTOKEN", Opcode: FN_GETTOKEN, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MINLEFT", Opcode: FN_MINLEFT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MINON", Opcode: FN_MINON, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "GETENV", Opcode: FN_GETENV, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CALLID", Opcode: FN_CALLID, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGAL", Opcode: FN_REGAL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGAH", Opcode: FN_REGAH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGBL", Opcode: FN_REGBL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGBH", Opcode: FN_REGBH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGCL", Opcode: FN_REGCL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGCH", Opcode: FN_REGCH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGDL", Opcode: FN_REGDL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGDH", Opcode: FN_REGDH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGAX", Opcode: FN_REGAX, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGBX", Opcode: FN_REGBX, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGCX", Opcode: FN_REGCX, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGDX", Opcode: FN_REGDX, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGSI", Opcode: FN_REGSI, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGDI", Opcode: FN_REGDI, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGF", Opcode: FN_REGF, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGCF", Opcode: FN_REGCF, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGDS", Opcode: FN_REGDS, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REGES", Opcode: FN_REGES, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "B2W", Opcode: FN_B2W, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "PEEKB", Opcode: FN_PEEKB, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "PEEKW", Opcode: FN_PEEKW, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MKADDR", Opcode: FN_MKADDR, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "EXIST", Opcode: FN_EXIST, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "I2S", Opcode: FN_I2S, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "S2I", Opcode: FN_S2I, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "CARRIER", Opcode: FN_CARRIER, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TOKENSTR", Opcode: FN_TOKENSTR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CDON", Opcode: FN_CDON, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "LANGEXT", Opcode: FN_LANGEXT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ANSION", Opcode: FN_ANSION, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "VALCC", Opcode: FN_VALCC, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FMTCC", Opcode: FN_FMTCC, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CCTYPE", Opcode: FN_CCTYPE, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "GETX", Opcode: FN_GETX, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "GETY", Opcode: FN_GETY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "BAND", Opcode: FN_BAND, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "BOR", Opcode: FN_BOR, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "BXOR", Opcode: FN_BXOR, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "BNOT", Opcode: FN_BNOT, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "U_PWDHIST", Opcode: FN_U_PWDHIST, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "U_PWDLC", Opcode: FN_U_PWDLC, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_PWDTC", Opcode: FN_U_PWDTC, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_STAT", Opcode: FN_U_STAT, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DEFCOLOR", Opcode: FN_DEFCOLOR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ABS", Opcode: FN_ABS, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "GRAFMODE", Opcode: FN_GRAFMODE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PSA", Opcode: FN_PSA, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FILEINF", Opcode: FN_FILEINF, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "PPENAME", Opcode: FN_PPENAME, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MKDATE", Opcode: FN_MKDATE, Version: 100, Sig: FuncFixedParameters, Arity: 3},
	{Name: "CURCOLOR", Opcode: FN_CURCOLOR, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "KINKEY", Opcode: FN_KINKEY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MINKEY", Opcode: FN_MINKEY, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MAXNODE", Opcode: FN_MAXNODE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "SLPATH", Opcode: FN_SLPATH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "HELPPATH", Opcode: FN_HELPPATH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TEMPPATH", Opcode: FN_TEMPPATH, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MODEM", Opcode: FN_MODEM, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "LOGGEDON", Opcode: FN_LOGGEDON, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CALLNUM", Opcode: FN_CALLNUM, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MGETBYTE", Opcode: FN_MGETBYTE, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TOKCOUNT", Opcode: FN_TOKCOUNT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_RECNUM", Opcode: FN_U_RECNUM, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "U_INCONF", Opcode: FN_U_INCONF, Version: 100, Sig: FuncFixedParameters, Arity: 2},
	{Name: "PEEKDW", Opcode: FN_PEEKDW, Version: 100, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DBGLEVEL", Opcode: FN_DBGLEVEL, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "SCRTEXT", Opcode: FN_SCRTEXT, Version: 100, Sig: FuncFixedParameters, Arity: 4},
	{Name: "SHOWSTAT", Opcode: FN_SHOWSTAT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PAGESTAT", Opcode: FN_PAGESTAT, Version: 100, Sig: FuncFixedParameters, Arity: 0},
	{Name: "REPLACESTR", Opcode: FN_REPLACESTR, Version: 200, Sig: FuncFixedParameters, Arity: 3},
	{Name: "STRIPSTR", Opcode: FN_STRIPSTR, Version: 200, Sig: FuncFixedParameters, Arity: 2},
	{Name: "TOBIGSTR", Opcode: FN_TOBIGSTR, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOBOOLEAN", Opcode: FN_TOBOOLEAN, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOBYTE", Opcode: FN_TOBYTE, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TODATE", Opcode: FN_TODATE, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TODREAL", Opcode: FN_TODREAL, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOEDATE", Opcode: FN_TOEDATE, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOINTEGER", Opcode: FN_TOINTEGER, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOMONEY", Opcode: FN_TOMONEY, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOREAL", Opcode: FN_TOREAL, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOSBYTE", Opcode: FN_TOSBYTE, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOSWORD", Opcode: FN_TOSWORD, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOTIME", Opcode: FN_TOTIME, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOUNSIGNED", Opcode: FN_TOUNSIGNED, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "TOWORD", Opcode: FN_TOWORD, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "MIXED", Opcode: FN_MIXED, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "ALIAS", Opcode: FN_ALIAS, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CONFREG", Opcode: FN_CONFREG, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CONFEXP", Opcode: FN_CONFEXP, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CONFSEL", Opcode: FN_CONFSEL, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CONFSYS", Opcode: FN_CONFSYS, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CONFMW", Opcode: FN_CONFMW, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "LPRINTED", Opcode: FN_LPRINTED, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ISNONSTOP", Opcode: FN_ISNONSTOP, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ERRCORRECT", Opcode: FN_ERRCORRECT, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CONFALIAS", Opcode: FN_CONFALIAS, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "USERALIAS", Opcode: FN_USERALIAS, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CURUSER", Opcode: FN_CURUSER, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "U_LMR", Opcode: FN_U_LMR, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CHATSTAT", Opcode: FN_CHATSTAT, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "DEFANS", Opcode: FN_DEFANS, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "LASTANS", Opcode: FN_LASTANS, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "MEGANUM", Opcode: FN_MEGANUM, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "EVTTIMEADJ", Opcode: FN_EVTTIMEADJ, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "ISBITSET", Opcode: FN_ISBITSET, Version: 200, Sig: FuncFixedParameters, Arity: 2},
	{Name: "FMTREAL", Opcode: FN_FMTREAL, Version: 200, Sig: FuncFixedParameters, Arity: 3},
	{Name: "FLAGCNT", Opcode: FN_FLAGCNT, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "KBDBUFSIZE", Opcode: FN_KBDBUFSIZE, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "PPLBUFSIZE", Opcode: FN_PPLBUFSIZE, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "KBDFILUSED", Opcode: FN_KBDFILUSED, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "LOMSGNUM", Opcode: FN_LOMSGNUM, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "HIMSGNUM", Opcode: FN_HIMSGNUM, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "DRIVESPACE", Opcode: FN_DRIVESPACE, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "OUTBYTES", Opcode: FN_OUTBYTES, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "HICONFNUM", Opcode: FN_HICONFNUM, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "INBYTES", Opcode: FN_INBYTES, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CRC32", Opcode: FN_CRC32, Version: 200, Sig: FuncFixedParameters, Arity: 2},
	{Name: "PCBMAC", Opcode: FN_PCBMAC, Version: 200, Sig: FuncFixedParameters, Arity: 1},
	{Name: "ACTMSGNUM", Opcode: FN_ACTMSGNUM, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "STACKLEFT", Opcode: FN_STACKLEFT, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "STACKERR", Opcode: FN_STACKERR, Version: 200, Sig: FuncFixedParameters, Arity: 0},
	{Name: "DGETALIAS", Opcode: FN_DGETALIAS, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DBOF", Opcode: FN_DBOF, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DCHANGED", Opcode: FN_DCHANGED, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DDECIMALS", Opcode: FN_DDECIMALS, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DDELETED", Opcode: FN_DDELETED, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DEOF", Opcode: FN_DEOF, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DERR", Opcode: FN_DERR, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DFIELDS", Opcode: FN_DFIELDS, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DLENGTH", Opcode: FN_DLENGTH, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DNAME", Opcode: FN_DNAME, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DRECCOUNT", Opcode: FN_DRECCOUNT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DRECNO", Opcode: FN_DRECNO, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DTYPE", Opcode: FN_DTYPE, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "FNEXT", Opcode: FN_FNEXT, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "DNEXT", Opcode: FN_DNEXT, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "TODDATE", Opcode: FN_TODDATE, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DCLOSEALL", Opcode: FN_DCLOSEALL, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "DOPEN", Opcode: FN_DOPEN, Version: 300, Sig: FuncFixedParameters, Arity: 3},
	{Name: "DCLOSE", Opcode: FN_DCLOSE, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DSETALIAS", Opcode: FN_DSETALIAS, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DPACK", Opcode: FN_DPACK, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DLOCKF", Opcode: FN_DLOCKF, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DLOCK", Opcode: FN_DLOCK, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DLOCKR", Opcode: FN_DLOCKR, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DUNLOCK", Opcode: FN_DUNLOCK, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DNOPEN", Opcode: FN_DNOPEN, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DNCLOSE", Opcode: FN_DNCLOSE, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DNCLOSEALL", Opcode: FN_DNCLOSEALL, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DNEW", Opcode: FN_DNEW, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DADD", Opcode: FN_DADD, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DAPPEND", Opcode: FN_DAPPEND, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DTOP", Opcode: FN_DTOP, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DGO", Opcode: FN_DGO, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DBOTTOM", Opcode: FN_DBOTTOM, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DSKIP", Opcode: FN_DSKIP, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DBLANK", Opcode: FN_DBLANK, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DDELETE", Opcode: FN_DDELETE, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DRECALL", Opcode: FN_DRECALL, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DTAG", Opcode: FN_DTAG, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DSEEK", Opcode: FN_DSEEK, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DFBLANK", Opcode: FN_DFBLANK, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DGET", Opcode: FN_DGET, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "DPUT", Opcode: FN_DPUT, Version: 300, Sig: FuncFixedParameters, Arity: 3},
	{Name: "DFCOPY", Opcode: FN_DFCOPY, Version: 300, Sig: FuncFixedParameters, Arity: 4},
	{Name: "DSELECT", Opcode: FN_DSELECT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DCHKSTAT", Opcode: FN_DCHKSTAT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "PCBACCOUNT", Opcode: FN_PCBACCOUNT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "PCBACCSTAT", Opcode: FN_PCBACCSTAT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "DERRMSG", Opcode: FN_DERRMSG, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "ACCOUNT", Opcode: FN_ACCOUNT, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "SCANMSGHDR", Opcode: FN_SCANMSGHDR, Version: 300, Sig: FuncFixedParameters, Arity: 4},
	{Name: "CHECKRIP", Opcode: FN_CHECKRIP, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "RIPVER", Opcode: FN_RIPVER, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "QWKLIMITS", Opcode: FN_QWKLIMITS, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FINDFIRST", Opcode: FN_FINDFIRST, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FINDNEXT", Opcode: FN_FINDNEXT, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "USELMRS", Opcode: FN_USELMRS, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "CONFINFO", Opcode: FN_CONFINFO, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "TINKEY", Opcode: FN_TINKEY, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "CWD", Opcode: FN_CWD, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "INSTRR", Opcode: FN_INSTRR, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "FDORDAKA", Opcode: FN_FDORDAKA, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FDORDORG", Opcode: FN_FDORDORG, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FDORDAREA", Opcode: FN_FDORDAREA, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FDOQRD", Opcode: FN_FDOQRD, Version: 300, Sig: FuncFixedParameters, Arity: 2},
	{Name: "GETDRIVE", Opcode: FN_GETDRIVE, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "SETDRIVE", Opcode: FN_SETDRIVE, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "BS2I", Opcode: FN_BS2I, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "BD2I", Opcode: FN_BD2I, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "I2BS", Opcode: FN_I2BS, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "I2BD", Opcode: FN_I2BD, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "FTELL", Opcode: FN_FTELL, Version: 300, Sig: FuncFixedParameters, Arity: 1},
	{Name: "OS", Opcode: FN_OS, Version: 300, Sig: FuncFixedParameters, Arity: 0},
	{Name: "SHORT_DESC", Opcode: FN_SHORT_DESC, Version: 340, Sig: FuncFixedParameters, Arity: 0},
	{Name: "GetBankBal", Opcode: FN_GETBANKBAL, Version: 340, Sig: FuncFixedParameters, Arity: 2},
	{Name: "GetMsgHdr", Opcode: FN_GETMSGHDR, Version: 340, Sig: FuncFixedParameters, Arity: 3},
	{Name: "SetMsgHdr", Opcode: FN_SETMSGHDR, Version: 340, Sig: FuncFixedParameters, Arity: 4},
	{Name: "MemberReference", Opcode: FN_MEMBERREFERENCE, Version: 400, Sig: FuncMemberReference},
	{Name: "MemberCall", Opcode: FN_MEMBERCALL, Version: 400, Sig: FuncMemberCall},
	{Name: "NewConfInfo", Opcode: FN_NEWCONFINFO, Version: 400, Sig: FuncFixedParameters, Arity: 1},
	{Name: "AreaId", Opcode: FN_AREAID, Version: 400, Sig: FuncFixedParameters, Arity: 1},
}
