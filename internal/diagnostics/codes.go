package diagnostics

// Lexer
const (
	ErrL001 ErrorCode = "L001" // invalid token
	ErrL002 ErrorCode = "L002" // unterminated string
	ErrL003 ErrorCode = "L003" // malformed number
	ErrL004 ErrorCode = "L004" // ** instead of ^
	ErrL005 ErrorCode = "L005" // braces before 350
	ErrL006 ErrorCode = "L006" // $ELSE without $IF
	ErrL007 ErrorCode = "L007" // $ELSEIF without $IF
	ErrL008 ErrorCode = "L008" // missing $ENDIF
	ErrL009 ErrorCode = "L009" // define redefined
	ErrL010 ErrorCode = "L010" // bad preprocessor expression
	ErrL011 ErrorCode = "L011" // member access before 400
	ErrL012 ErrorCode = "L012" // unknown preprocessor directive
	ErrL013 ErrorCode = "L013" // $ENDIF without $IF
)

// Parser
const (
	ErrP001 ErrorCode = "P001"
	ErrP002 ErrorCode = "P002"
	ErrP003 ErrorCode = "P003"
	ErrP004 ErrorCode = "P004"
	ErrP005 ErrorCode = "P005"
	ErrP006 ErrorCode = "P006"
	ErrP007 ErrorCode = "P007"
	ErrP008 ErrorCode = "P008"
	ErrP009 ErrorCode = "P009"
	ErrP010 ErrorCode = "P010"
	ErrP011 ErrorCode = "P011"
	ErrP012 ErrorCode = "P012"
	ErrP013 ErrorCode = "P013"
	ErrP014 ErrorCode = "P014"
	ErrP015 ErrorCode = "P015"
	ErrP016 ErrorCode = "P016"
	ErrP017 ErrorCode = "P017"
	ErrP018 ErrorCode = "P018"
	ErrP019 ErrorCode = "P019"
	ErrP020 ErrorCode = "P020"
	ErrP021 ErrorCode = "P021"
	ErrP022 ErrorCode = "P022"
	ErrP023 ErrorCode = "P023"
	ErrP024 ErrorCode = "P024"
	ErrP025 ErrorCode = "P025"
	ErrP026 ErrorCode = "P026"
	ErrP027 ErrorCode = "P027"
	ErrP028 ErrorCode = "P028"
	ErrP029 ErrorCode = "P029"
	ErrP030 ErrorCode = "P030"
	ErrP031 ErrorCode = "P031"
	ErrP032 ErrorCode = "P032"
	ErrP033 ErrorCode = "P033"
)

// Parser error aliases used at call sites
const (
	InvalidToken                 = ErrP001
	MissingOpenParens            = ErrP002
	MissingCloseParens           = ErrP003
	MissingCloseBracket          = ErrP004
	LabelExpected                = ErrP005
	EndExpected                  = ErrP006
	IdentifierExpected           = ErrP007
	EqTokenExpected              = ErrP008
	ToExpected                   = ErrP009
	ExpressionExpected           = ErrP010
	StatementExpected            = ErrP011
	TooManyDimensions            = ErrP012
	UnknownIdentifier            = ErrP013
	NumberExpected               = ErrP014
	TypeExpected                 = ErrP015
	InvalidDeclaration           = ErrP016
	VarNotAllowedInFunctions     = ErrP017
	EolExpected                  = ErrP018
	CommaExpected                = ErrP019
	ThenExpected                 = ErrP020
	CaseExpectedAfterSelect      = ErrP021
	IfWhileConditionNotFound     = ErrP022
	BlockEndBeforeBlockStart     = ErrP023
	StatementVersionNotSupported = ErrP024
	ReturnExpressionOutsideFunc  = ErrP025
	CommaOrRBraceExpected        = ErrP026
	NoStatementsAfterFunctions   = ErrP027
	NextIdentifierMismatch       = ErrP028
	MismatchedBlockEnd           = ErrP029
	AlreadyDefined               = ErrP030
	WrongArgumentCount           = ErrP031
	UntilExpected                = ErrP032
	NoStatementsOutsideBlock     = ErrP033
)

// Compiler
const (
	ErrC001 ErrorCode = "C001" // unknown variable
	ErrC002 ErrorCode = "C002" // unknown function or procedure
	ErrC003 ErrorCode = "C003" // label not found
	ErrC004 ErrorCode = "C004" // argument count
	ErrC005 ErrorCode = "C005" // functions need 300+
	ErrC006 ErrorCode = "C006" // break/continue outside loop
	ErrC007 ErrorCode = "C007" // variable table overflow
	ErrC008 ErrorCode = "C008" // VAR argument is not a variable
	ErrC009 ErrorCode = "C009" // duplicate variable
	ErrC010 ErrorCode = "C010" // declared but not implemented
	ErrC011 ErrorCode = "C011" // unsupported expression
	ErrC012 ErrorCode = "C012" // duplicate label
)

// Decoder
const (
	ErrD001 ErrorCode = "D001" // invalid statement
	ErrD002 ErrorCode = "D002" // invalid expression
	ErrD003 ErrorCode = "D003" // unexpected end of buffer
)

// Runtime
const (
	ErrR001 ErrorCode = "R001" // script aborted with a runtime error
)

var messages = map[ErrorCode]string{
	ErrL001: "invalid token '%s'",
	ErrL002: "unexpected end of file in string",
	ErrL003: "invalid number '%s'",
	ErrL004: "'**' is not a PPL operator, use '^'",
	ErrL005: "braces are treated as parentheses before language version 350",
	ErrL006: "$ELSE without $IF",
	ErrL007: "$ELSEIF without $IF",
	ErrL008: "missing $ENDIF",
	ErrL009: "'%s' is already defined",
	ErrL010: "invalid preprocessor expression: %s",
	ErrL011: "member access requires language version 400",
	ErrL012: "unknown preprocessor directive '%s'",
	ErrL013: "$ENDIF without $IF",

	InvalidToken:                 "invalid token '%s'",
	MissingOpenParens:            "'(' expected, found '%s'",
	MissingCloseParens:           "')' expected, found '%s'",
	MissingCloseBracket:          "']' expected, found '%s'",
	LabelExpected:                "label expected, found '%s'",
	EndExpected:                  "'%s' expected",
	IdentifierExpected:           "identifier expected, found '%s'",
	EqTokenExpected:              "'=' expected, found '%s'",
	ToExpected:                   "'TO' expected, found '%s'",
	ExpressionExpected:           "expression expected, found '%s'",
	StatementExpected:            "statement expected, found '%s'",
	TooManyDimensions:            "too many dimensions: %d (max 3)",
	UnknownIdentifier:            "unknown identifier '%s'",
	NumberExpected:               "number expected, found '%s'",
	TypeExpected:                 "type expected, found '%s'",
	InvalidDeclaration:           "invalid declaration",
	VarNotAllowedInFunctions:     "VAR parameters are not allowed in functions",
	EolExpected:                  "end of line expected, found '%s'",
	CommaExpected:                "',' expected, found '%s'",
	ThenExpected:                 "'THEN' expected, found '%s'",
	CaseExpectedAfterSelect:      "'CASE' expected after 'SELECT'",
	IfWhileConditionNotFound:     "condition expected",
	BlockEndBeforeBlockStart:     "'%s' without matching block start",
	StatementVersionNotSupported: "'%s' requires language version %d (current %d)",
	ReturnExpressionOutsideFunc:  "RETURN with a value is only allowed inside a function",
	CommaOrRBraceExpected:        "',' or '}' expected, found '%s'",
	NoStatementsAfterFunctions:   "no statements allowed after functions (use $USEFUNCS)",
	NextIdentifierMismatch:       "NEXT variable '%s' does not match FOR variable '%s'",
	MismatchedBlockEnd:           "'%s' closes a block opened by '%s'",
	AlreadyDefined:               "'%s' is already defined",
	WrongArgumentCount:           "'%s' expects %s arguments, got %d",
	UntilExpected:                "'UNTIL' expected, found '%s'",
	NoStatementsOutsideBlock:     "with $USEFUNCS only declarations may precede BEGIN",

	ErrC001: "unknown variable '%s'",
	ErrC002: "unknown function or procedure '%s'",
	ErrC003: "label '%s' not found",
	ErrC004: "'%s' expects %d arguments, got %d",
	ErrC005: "functions and procedures require language version 300",
	ErrC006: "'%s' outside of a loop",
	ErrC007: "too many variables: %d",
	ErrC008: "argument %d of '%s' must be a variable",
	ErrC009: "variable '%s' is already declared",
	ErrC010: "'%s' is declared but not implemented",
	ErrC011: "unsupported expression: %s",
	ErrC012: "label '%s' is defined twice",

	ErrD001: "invalid statement opcode %d",
	ErrD002: "invalid expression: %s",
	ErrD003: "unexpected end of script buffer",

	ErrR001: "runtime error: %s",
}
