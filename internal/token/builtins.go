package token

import "strings"

// StackLimit is the value of the STK_LIMIT builtin
const StackLimit = 6022 + 1024

// BuiltinConsts lists the named constants every PPL program can use
var BuiltinConsts = []BuiltinConst{
	{Name: "TRUE", Value: 0x01},
	{Name: "FALSE", Value: 0x00},
	{Name: "STK_LIMIT", Value: StackLimit},
	{Name: "ATTACH_LIM_P", Value: 0x03},
	{Name: "ATTACH_LIM_U", Value: 0x02},
	{Name: "ACC_CUR_BAL", Value: 0x04},
	{Name: "F_NET", Value: 0x20},
	{Name: "CMAXMSGS", Value: 0x01},
	{Name: "MAXMSGS", Value: 0x00},
	{Name: "CUR_USER", Value: 0},
	{Name: "NO_USER", Value: -1},
	{Name: "ACC_STAT", Value: 0x00},
	{Name: "ACC_TIME", Value: 0x01},
	{Name: "ACC_MSGREAD", Value: 0x02},
	{Name: "ACC_MSGWRITE", Value: 0x03},
	{Name: "DEFS", Value: 0x00},
	{Name: "BELL", Value: 0x00800},
	{Name: "LOGIT", Value: 0x08000},
	{Name: "LOGITLEFT", Value: 0x10000},
	{Name: "AUTO", Value: 0x02000},
	{Name: "ECHODOTS", Value: 0x01},
	{Name: "ERASELINE", Value: 0x20},
	{Name: "FIELDLEN", Value: 0x02},
	{Name: "GUIDE", Value: 0x04},
	{Name: "HIGHASCII", Value: 0x01000},
	{Name: "LFAFTER", Value: 0x00100},
	{Name: "LFBEFORE", Value: 0x80},
	{Name: "NEWLINE", Value: 0x40},
	{Name: "NOCLEAR", Value: 0x00400},
	{Name: "STACKED", Value: 0x10},
	{Name: "UPCASE", Value: 0x08},
	{Name: "WORDWRAP", Value: 0x00200},
	{Name: "YESNO", Value: 0x04000},
	{Name: "NEWBALANCE", Value: 0x00},
	{Name: "CHRG_CALL", Value: 0x01},
	{Name: "CHRG_TIME", Value: 0x02},
	{Name: "CHRG_PEAKTIME", Value: 0x03},
	{Name: "CHRG_CHAT", Value: 0x04},
	{Name: "CHRG_MSGREAD", Value: 0x05},
	{Name: "CHRG_MSGCAP", Value: 0x06},
	{Name: "CHRG_MSGWRITE", Value: 0x07},
	{Name: "CHRG_MSGECHOED", Value: 0x08},
	{Name: "CHRG_MSGPRIVATE", Value: 0x09},
	{Name: "CHRG_DOWNFILE", Value: 0x0A},
	{Name: "CHRG_DOWNBYTES", Value: 0x0B},
	{Name: "PAY_UPFILE", Value: 0x0C},
	{Name: "PAY_UPBYTES", Value: 0x0D},
	{Name: "WARNLEVEL", Value: 0x0E},
	{Name: "CRC_FILE", Value: 0x01},
	{Name: "CRC_STR", Value: 0x00},
	{Name: "START_BAL", Value: 0x00},
	{Name: "START_SESSION", Value: 0x01},
	{Name: "DEB_CALL", Value: 0x02},
	{Name: "DEB_TIME", Value: 0x03},
	{Name: "DEB_MSGREAD", Value: 0x04},
	{Name: "DEB_MSGCAP", Value: 0x05},
	{Name: "DEB_MSGWRITE", Value: 0x06},
	{Name: "DEB_MSGECHOED", Value: 0x07},
	{Name: "DEB_MSGPRIVATE", Value: 0x08},
	{Name: "DEB_DOWNFILE", Value: 0x09},
	{Name: "DEB_DOWNBYTES", Value: 0x0A},
	{Name: "DEB_CHAT", Value: 0x0B},
	{Name: "DEB_TPU", Value: 0x0C},
	{Name: "DEB_SPECIAL", Value: 0x0D},
	{Name: "CRED_UPFILE", Value: 0x0E},
	{Name: "CRED_UPBYTES", Value: 0x0F},
	{Name: "CRED_SPECIAL", Value: 0x10},
	{Name: "SEC_DROP", Value: 0x11},
	{Name: "F_EXP", Value: 0x02},
	{Name: "F_MW", Value: 0x10},
	{Name: "F_REG", Value: 0x01},
	{Name: "F_SEL", Value: 0x04},
	{Name: "F_SYS", Value: 0x08},
	{Name: "FCL", Value: 0x02},
	{Name: "FNS", Value: 0x01},
	{Name: "NC", Value: 0x00},
	{Name: "GRAPH", Value: 0x01},
	{Name: "SEC", Value: 0x02},
	{Name: "LANG", Value: 0x04},
	{Name: "HDR_ACTIVE", Value: 0x0E},
	{Name: "HDR_BLOCKS", Value: 0x04},
	{Name: "HDR_DATE", Value: 0x05},
	{Name: "HDR_ECHO", Value: 0x0F},
	{Name: "HDR_FROM", Value: 0x0B},
	{Name: "HDR_MSGNUM", Value: 0x02},
	{Name: "HDR_MSGREF", Value: 0x03},
	{Name: "HDR_PWD", Value: 0x0D},
	{Name: "HDR_REPLY", Value: 0x0A},
	{Name: "HDR_RPLYDATE", Value: 0x08},
	{Name: "HDR_RPLYTIME", Value: 0x09},
	{Name: "HDR_STATUS", Value: 0x01},
	{Name: "HDR_SUBJ", Value: 0x0C},
	{Name: "HDR_TIME", Value: 0x06},
	{Name: "HDR_TO", Value: 0x07},
	{Name: "O_RD", Value: 0x00},
	{Name: "O_RW", Value: 0x02},
	{Name: "O_WR", Value: 0x01},
	{Name: "SEEK_CUR", Value: 0x01},
	{Name: "SEEK_END", Value: 0x02},
	{Name: "SEEK_SET", Value: 0x00},
	{Name: "S_DB", Value: 0x03},
	{Name: "S_DN", Value: 0x00},
	{Name: "S_DR", Value: 0x01},
	{Name: "S_DW", Value: 0x02},
}
var builtinIndex = func() map[string]*BuiltinConst {
	m := make(map[string]*BuiltinConst, len(BuiltinConsts))
	for i := range BuiltinConsts {
		m[BuiltinConsts[i].Name] = &BuiltinConsts[i]
	}
	return m
}()

// LookupBuiltin finds a builtin constant by name (case-insensitive)
func LookupBuiltin(name string) *BuiltinConst {
	return builtinIndex[strings.ToUpper(name)]
}
