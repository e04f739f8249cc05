package executable

// OpCode is a statement opcode, the first word of every encoded statement
type OpCode int16

const (
	OP_END OpCode = iota + 1
	OP_CLS
	OP_CLREOL
	OP_MORE
	OP_WAIT
	OP_COLOR
	OP_GOTO
	OP_LET
	OP_PRINT
	OP_PRINTLN
	OP_IFNOT
	OP_CONFFLAG
	OP_CONFUNFLAG
	OP_DISPFILE
	OP_INPUT
	OP_FCREATE
	OP_FOPEN
	OP_FAPPEND
	OP_FCLOSE
	OP_FGET
	OP_FPUT
	OP_FPUTLN
	OP_RESETDISP
	OP_STARTDISP
	OP_FPUTPAD
	OP_HANGUP
	OP_GETUSER
	OP_PUTUSER
	OP_DEFCOLOR
	OP_DELETE
	OP_DELUSER
	OP_ADJTIME
	OP_LOG
	OP_INPUTSTR
	OP_INPUTYN
	OP_INPUTMONEY
	OP_INPUTINT
	OP_INPUTCC
	OP_INPUTDATE
	OP_INPUTTIME
	OP_GOSUB
	OP_RETURN
	OP_PROMPTSTR
	OP_DTRON
	OP_DTROFF
	OP_CDCHKON
	OP_CDCHKOFF
	OP_DELAY
	OP_SENDMODEM
	OP_INC
	OP_DEC
	OP_NEWLINE
	OP_NEWLINES
	OP_TOKENIZE
	OP_GETTOKEN
	OP_SHELL
	OP_DISPTEXT
	OP_STOP
	OP_INPUTTEXT
	OP_BEEP
	OP_PUSH
	OP_POP
	OP_KBDSTUFF
	OP_CALL
	OP_JOIN
	OP_QUEST
	OP_BLT
	OP_DIR
	OP_KBDFILE
	OP_BYE
	OP_GOODBYE
	OP_BROADCAST
	OP_WAITFOR
	OP_KBDCHKON
	OP_KBDCHKOFF
	OP_OPTEXT
	OP_DISPSTR
	OP_RDUNET
	OP_WRUNET
	OP_DOINTR
	OP_VARSEG
	OP_VAROFF
	OP_POKEB
	OP_POKEW
	OP_VARADDR
	OP_ANSIPOS
	OP_BACKUP
	OP_FORWARD
	OP_FRESHLINE
	OP_WRUSYS
	OP_RDUSYS
	OP_NEWPWD
	OP_OPENCAP
	OP_CLOSECAP
	OP_MESSAGE
	OP_SAVESCRN
	OP_RESTSCRN
	OP_SOUND
	OP_CHAT
	OP_SPRINT
	OP_SPRINTLN
	OP_MPRINT
	OP_MPRINTLN
	OP_RENAME
	OP_FREWIND
	OP_POKEDW
	OP_DBGLEVEL
	OP_SHOWON
	OP_SHOWOFF
	OP_PAGEON
	OP_PAGEOFF
	OP_FSEEK
	OP_FFLUSH
	OP_FREAD
	OP_FWRITE
	OP_FDEFIN
	OP_FDEFOUT
	OP_FDGET
	OP_FDPUT
	OP_FDPUTLN
	OP_FDPUTPAD
	OP_FDREAD
	OP_FDWRITE
	OP_ADJBYTES
	OP_KBDSTRING
	OP_ALIAS
	OP_REDIM
	OP_APPEND
	OP_COPY
	OP_KBDFLUSH
	OP_MDMFLUSH
	OP_KEYFLUSH
	OP_LASTIN
	OP_FLAG
	OP_DOWNLOAD
	OP_WRUSYSDOOR
	OP_GETALTUSER
	OP_ADJDBYTES
	OP_ADJTBYTES
	OP_ADJTFILES
	OP_LANG
	OP_SORT
	OP_MOUSEREG
	OP_SCRFILE
	OP_SEARCHINIT
	OP_SEARCHFIND
	OP_SEARCHSTOP
	OP_PRFOUND
	OP_PRFOUNDLN
	OP_TPAGET
	OP_TPAPUT
	OP_TPACGET
	OP_TPACPUT
	OP_TPAREAD
	OP_TPAWRITE
	OP_TPACREAD
	OP_TPACWRITE
	OP_BITSET
	OP_BITCLEAR
	OP_BRAG
	OP_FREALTUSER
	OP_SETLMR
	OP_SETENV
	OP_FCLOSEALL
	OP_DECLARE
	OP_FUNCTION
	OP_PROCEDURE
	OP_PCALL
	OP_FPCLR
	OP_BEGIN
	OP_FEND
	OP_STATIC
	OP_STACKABORT
	OP_DCREATE
	OP_DOPEN
	OP_DCLOSE
	OP_DSETALIAS
	OP_DPACK
	OP_DCLOSEALL
	OP_DLOCK
	OP_DLOCKR
	OP_DLOCKG
	OP_DUNLOCK
	OP_DNCREATE
	OP_DNOPEN
	OP_DNCLOSE
	OP_DNCLOSEALL
	OP_DNEW
	OP_DADD
	OP_DAPPEND
	OP_DTOP
	OP_DGO
	OP_DBOTTOM
	OP_DSKIP
	OP_DBLANK
	OP_DDELETE
	OP_DRECALL
	OP_DTAG
	OP_DSEEK
	OP_DFBLANK
	OP_DGET
	OP_DPUT
	OP_DFCOPY
	OP_EVAL
	OP_ACCOUNT
	OP_RECORDUSAGE
	OP_MSGTOFILE
	OP_QWKLIMITS
	OP_COMMAND
	OP_USELMRS
	OP_CONFINFO
	OP_ADJTUBYTES
	OP_GRAFMODE
	OP_ADDUSER
	OP_KILLMSG
	OP_CHDIR
	OP_MKDIR
	OP_RMDIR
	OP_FDOWRAKA
	OP_FDOADDAKA
	OP_FDOWRORG
	OP_FDOADDORG
	OP_FDOQMOD
	OP_FDOQADD
	OP_FDOQDEL
	OP_SOUNDDELAY
	OP_SHORTDESC
	OP_MOVEMSG
	OP_SETBANKBAL
)

// LastOpCode is the highest statement opcode any supported runtime knows
const LastOpCode = OP_SETBANKBAL

// StatementDefinitions is indexed by opcode. Entries past LastOpCode are aliases.
var StatementDefinitions = [...]StatementDef{
	{Name: "Placeholder", Opcode: 0, Version: 100, Sig: SigInvalid},
	{Name: "END", Opcode: OP_END, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Cls", Opcode: OP_CLS, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "ClrEOL", Opcode: OP_CLREOL, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "More", Opcode: OP_MORE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Wait", Opcode: OP_WAIT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Color", Opcode: OP_COLOR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "GOTO", Opcode: OP_GOTO, Version: 100, Sig: SigInvalid},
	{Name: "LET", Opcode: OP_LET, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 2},
	{Name: "Print", Opcode: OP_PRINT, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "PrintLn", Opcode: OP_PRINTLN, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "IF", Opcode: OP_IFNOT, Version: 100, Sig: SigInvalid},
	{Name: "ConfFlag", Opcode: OP_CONFFLAG, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "ConfUnflag", Opcode: OP_CONFUNFLAG, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DispFile", Opcode: OP_DISPFILE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "Input", Opcode: OP_INPUT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "FCreate", Opcode: OP_FCREATE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 4},
	{Name: "FOpen", Opcode: OP_FOPEN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 4},
	{Name: "FAppend", Opcode: OP_FAPPEND, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 4},
	{Name: "FClose", Opcode: OP_FCLOSE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FGet", Opcode: OP_FGET, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "FPut", Opcode: OP_FPUT, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 1},
	{Name: "FPutLn", Opcode: OP_FPUTLN, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 1},
	{Name: "ResetDisp", Opcode: OP_RESETDISP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "StartDisp", Opcode: OP_STARTDISP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FPutPad", Opcode: OP_FPUTPAD, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "Hangup", Opcode: OP_HANGUP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "GetUser", Opcode: OP_GETUSER, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "PutUser", Opcode: OP_PUTUSER, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "DefColor", Opcode: OP_DEFCOLOR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Delete", Opcode: OP_DELETE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DelUser", Opcode: OP_DELUSER, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "AdjTime", Opcode: OP_ADJTIME, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Log", Opcode: OP_LOG, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "InputStr", Opcode: OP_INPUTSTR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 6},
	{Name: "InputYN", Opcode: OP_INPUTYN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "InputMoney", Opcode: OP_INPUTMONEY, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "InputInt", Opcode: OP_INPUTINT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "InputCC", Opcode: OP_INPUTCC, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "InputDate", Opcode: OP_INPUTDATE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "InputTime", Opcode: OP_INPUTTIME, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "GOSUB", Opcode: OP_GOSUB, Version: 100, Sig: SigInvalid},
	{Name: "RETURN", Opcode: OP_RETURN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "PromptStr", Opcode: OP_PROMPTSTR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 5},
	{Name: "DtrOn", Opcode: OP_DTRON, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "DtrOff", Opcode: OP_DTROFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "CdchkOn", Opcode: OP_CDCHKON, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "CdchkOff", Opcode: OP_CDCHKOFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Delay", Opcode: OP_DELAY, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "SendModem", Opcode: OP_SENDMODEM, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Inc", Opcode: OP_INC, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 1},
	{Name: "Dec", Opcode: OP_DEC, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 1},
	{Name: "NewLine", Opcode: OP_NEWLINE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "NewLines", Opcode: OP_NEWLINES, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Tokenize", Opcode: OP_TOKENIZE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "GetToken", Opcode: OP_GETTOKEN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 1},
	{Name: "Shell", Opcode: OP_SHELL, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 4},
	{Name: "DispText", Opcode: OP_DISPTEXT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "STOP", Opcode: OP_STOP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "InputText", Opcode: OP_INPUTTEXT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 4},
	{Name: "Beep", Opcode: OP_BEEP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Push", Opcode: OP_PUSH, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 1},
	{Name: "Pop", Opcode: OP_POP, Version: 100, Sig: SigPop},
	{Name: "KbdStuff", Opcode: OP_KBDSTUFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Call", Opcode: OP_CALL, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Join", Opcode: OP_JOIN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Quest", Opcode: OP_QUEST, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Blt", Opcode: OP_BLT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Dir", Opcode: OP_DIR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "KbdFile", Opcode: OP_KBDFILE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Bye", Opcode: OP_BYE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Goodbye", Opcode: OP_GOODBYE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Broadcast", Opcode: OP_BROADCAST, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "WaitFor", Opcode: OP_WAITFOR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "KbdchkOn", Opcode: OP_KBDCHKON, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "KbdchkOff", Opcode: OP_KBDCHKOFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "OpText", Opcode: OP_OPTEXT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DispStr", Opcode: OP_DISPSTR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "RDUnet", Opcode: OP_RDUNET, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "WRUnet", Opcode: OP_WRUNET, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 6},
	{Name: "DoIntr", Opcode: OP_DOINTR, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 10},
	{Name: "VarSeg", Opcode: OP_VARSEG, Version: 100, Sig: SigVarSeg},
	{Name: "VarOff", Opcode: OP_VAROFF, Version: 100, Sig: SigVarSeg},
	{Name: "PokeB", Opcode: OP_POKEB, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "PokeW", Opcode: OP_POKEW, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "VarAddr", Opcode: OP_VARADDR, Version: 100, Sig: SigVarSeg},
	{Name: "AnsiPos", Opcode: OP_ANSIPOS, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "Backup", Opcode: OP_BACKUP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Forward", Opcode: OP_FORWARD, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Freshline", Opcode: OP_FRESHLINE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "WRUSys", Opcode: OP_WRUSYS, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "RDUSys", Opcode: OP_RDUSYS, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "NewPwd", Opcode: OP_NEWPWD, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "OpenCap", Opcode: OP_OPENCAP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "CloseCap", Opcode: OP_CLOSECAP, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Message", Opcode: OP_MESSAGE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 9},
	{Name: "SaveScrn", Opcode: OP_SAVESCRN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "RestScrn", Opcode: OP_RESTSCRN, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Sound", Opcode: OP_SOUND, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Chat", Opcode: OP_CHAT, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "SPrint", Opcode: OP_SPRINT, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "SPrintLN", Opcode: OP_SPRINTLN, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "MPrint", Opcode: OP_MPRINT, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "MPrintLn", Opcode: OP_MPRINTLN, Version: 100, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "Rename", Opcode: OP_RENAME, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "FRewind", Opcode: OP_FREWIND, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "PokeDW", Opcode: OP_POKEDW, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DbgLevel", Opcode: OP_DBGLEVEL, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "ShowOn", Opcode: OP_SHOWON, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "ShowOff", Opcode: OP_SHOWOFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "PageOn", Opcode: OP_PAGEON, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "PageOFf", Opcode: OP_PAGEOFF, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "FSeek", Opcode: OP_FSEEK, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "FFlush", Opcode: OP_FFLUSH, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FRead", Opcode: OP_FREAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "FWrite", Opcode: OP_FWRITE, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "FDefIn", Opcode: OP_FDEFIN, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FDefOut", Opcode: OP_FDEFOUT, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FDGet", Opcode: OP_FDGET, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 1},
	{Name: "FDPut", Opcode: OP_FDPUT, Version: 200, Sig: SigVariableArguments, VarArg: 0, MinArgs: 1},
	{Name: "FDPutLn", Opcode: OP_FDPUTLN, Version: 200, Sig: SigVariableArguments, VarArg: 0, MinArgs: 1},
	{Name: "FDPutPad", Opcode: OP_FDPUTPAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "FDRead", Opcode: OP_FDREAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 2},
	{Name: "FDWrite", Opcode: OP_FDWRITE, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "AdjBytes", Opcode: OP_ADJBYTES, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "KbdString", Opcode: OP_KBDSTRING, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Alias", Opcode: OP_ALIAS, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "ReDim", Opcode: OP_REDIM, Version: 200, Sig: SigVariableArguments, VarArg: 1, MinArgs: 2, MaxArgs: 4},
	{Name: "Append", Opcode: OP_APPEND, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "Copy", Opcode: OP_COPY, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "KbdFlush", Opcode: OP_KBDFLUSH, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "MdmFlush", Opcode: OP_MDMFLUSH, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "KeyFlush", Opcode: OP_KEYFLUSH, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "LastIn", Opcode: OP_LASTIN, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Flag", Opcode: OP_FLAG, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Download", Opcode: OP_DOWNLOAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "WRUsysDoor", Opcode: OP_WRUSYSDOOR, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "GetAltUser", Opcode: OP_GETALTUSER, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "AdjDBytes", Opcode: OP_ADJDBYTES, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "AdjTBytes", Opcode: OP_ADJTBYTES, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "AdjTFiles", Opcode: OP_ADJTFILES, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Lang", Opcode: OP_LANG, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Sort", Opcode: OP_SORT, Version: 200, Sig: SigSort},
	{Name: "MouseReg", Opcode: OP_MOUSEREG, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 10},
	{Name: "ScrFile", Opcode: OP_SCRFILE, Version: 200, Sig: SigVarSeg},
	{Name: "SearchInit", Opcode: OP_SEARCHINIT, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "SearchFind", Opcode: OP_SEARCHFIND, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "SearchStop", Opcode: OP_SEARCHSTOP, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "PrFound", Opcode: OP_PRFOUND, Version: 200, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "PrFoundLn", Opcode: OP_PRFOUNDLN, Version: 200, Sig: SigVariableArguments, VarArg: 0, MinArgs: 0},
	{Name: "TPAGet", Opcode: OP_TPAGET, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "TPAPut", Opcode: OP_TPAPUT, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "TPACGet", Opcode: OP_TPACGET, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "TPACPut", Opcode: OP_TPACPUT, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "TPARead", Opcode: OP_TPAREAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 2},
	{Name: "TPAWrite", Opcode: OP_TPAWRITE, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "TPACRead", Opcode: OP_TPACREAD, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 2, Args: 3},
	{Name: "TPACWrite", Opcode: OP_TPACWRITE, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "BitSet", Opcode: OP_BITSET, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 2},
	{Name: "BitClear", Opcode: OP_BITCLEAR, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 1, Args: 2},
	{Name: "Brag", Opcode: OP_BRAG, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "FRealTUser", Opcode: OP_FREALTUSER, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "SetLMR", Opcode: OP_SETLMR, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "SetEnv", Opcode: OP_SETENV, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FCloseAll", Opcode: OP_FCLOSEALL, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Declare", Opcode: OP_DECLARE, Version: 200, Sig: SigInvalid},
	{Name: "Function", Opcode: OP_FUNCTION, Version: 200, Sig: SigInvalid},
	{Name: "Procedure", Opcode: OP_PROCEDURE, Version: 200, Sig: SigInvalid},
	{Name: "PCALL", Opcode: OP_PCALL, Version: 200, Sig: SigInvalid},
	{Name: "FPCLR", Opcode: OP_FPCLR, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Begin", Opcode: OP_BEGIN, Version: 200, Sig: SigInvalid},
	{Name: "FEND", Opcode: OP_FEND, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Static", Opcode: OP_STATIC, Version: 200, Sig: SigInvalid},
	{Name: "StackAbort", Opcode: OP_STACKABORT, Version: 200, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DCreate", Opcode: OP_DCREATE, Version: 300, Sig: SigDcreate},
	{Name: "DOpen", Opcode: OP_DOPEN, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "DClose", Opcode: OP_DCLOSE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DSetAlias", Opcode: OP_DSETALIAS, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DPack", Opcode: OP_DPACK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DCloseAll", Opcode: OP_DCLOSEALL, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "DLock", Opcode: OP_DLOCK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DLockR", Opcode: OP_DLOCKR, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DLockG", Opcode: OP_DLOCKG, Version: 300, Sig: SigDlockg},
	{Name: "DUnlock", Opcode: OP_DUNLOCK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DNCreate", Opcode: OP_DNCREATE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "DNOpen", Opcode: OP_DNOPEN, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DNClose", Opcode: OP_DNCLOSE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DNCloseAll", Opcode: OP_DNCLOSEALL, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DNew", Opcode: OP_DNEW, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DAdd", Opcode: OP_DADD, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DAppend", Opcode: OP_DAPPEND, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DTop", Opcode: OP_DTOP, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DGo", Opcode: OP_DGO, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DBottom", Opcode: OP_DBOTTOM, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DSkip", Opcode: OP_DSKIP, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DBlank", Opcode: OP_DBLANK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DDelete", Opcode: OP_DDELETE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DRecall", Opcode: OP_DRECALL, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "DTag", Opcode: OP_DTAG, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DSeek", Opcode: OP_DSEEK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DFBlank", Opcode: OP_DFBLANK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DGet", Opcode: OP_DGET, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 3, Args: 3},
	{Name: "DPut", Opcode: OP_DPUT, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "DFCopy", Opcode: OP_DFCOPY, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 4},
	{Name: "Eval", Opcode: OP_EVAL, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Account", Opcode: OP_ACCOUNT, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "RecordUsage", Opcode: OP_RECORDUSAGE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 5},
	{Name: "MsgToFile", Opcode: OP_MSGTOFILE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "QwkLimits", Opcode: OP_QWKLIMITS, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "Command", Opcode: OP_COMMAND, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "UseLMRs", Opcode: OP_USELMRS, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "ConfInfo", Opcode: OP_CONFINFO, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "AdjTUBytes", Opcode: OP_ADJTUBYTES, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "GrafMode", Opcode: OP_GRAFMODE, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "AddUser", Opcode: OP_ADDUSER, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "KillMsg", Opcode: OP_KILLMSG, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "ChDir", Opcode: OP_CHDIR, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "MkDir", Opcode: OP_MKDIR, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "RmDir", Opcode: OP_RMDIR, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "FDOWRAka", Opcode: OP_FDOWRAKA, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "FDOADDAka", Opcode: OP_FDOADDAKA, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "FDOWROrg", Opcode: OP_FDOWRORG, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "FDOADDOrg", Opcode: OP_FDOADDORG, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "FDOQMod", Opcode: OP_FDOQMOD, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 4},
	{Name: "FDOQAdd", Opcode: OP_FDOQADD, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "FDOQDel", Opcode: OP_FDOQDEL, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "SoundDelay", Opcode: OP_SOUNDDELAY, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "ShortDesc", Opcode: OP_SHORTDESC, Version: 340, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "MoveMsg", Opcode: OP_MOVEMSG, Version: 340, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 3},
	{Name: "SetBankBal", Opcode: OP_SETBANKBAL, Version: 340, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
	{Name: "DLockF", Opcode: OP_DLOCK, Version: 300, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "PutAltUser", Opcode: OP_PUTUSER, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 0},
	{Name: "Erase", Opcode: OP_DELETE, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 1},
	{Name: "Poke", Opcode: OP_POKEB, Version: 100, Sig: SigArgumentsWithVariable, VarArg: 0, Args: 2},
}
