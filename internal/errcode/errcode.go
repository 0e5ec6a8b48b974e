package errcode

// Code 业务错误码（固定词表，前端按码分支，不下发自由文案）
type Code string

const (
	AlreadyExist    Code = "ALREADY_EXIST"
	MissingValue    Code = "MISSING_VALUE"
	NotFound        Code = "NOT_FOUND"
	InvalidValue    Code = "INVALID_VALUE"
	DuplicateLesson Code = "DUPLICATE_LESSON"
	DuplicateTime   Code = "DUPLICATE_TIME"
	DuplicateValue  Code = "DUPLICATE_VALUE"
	InvalidFormat   Code = "INVALID_FORMAT"
	InvalidLength   Code = "INVALID_LENGTH"
)

// Field 错误映射的键，用常量避免裸字符串打错导致前端匹配不上
type Field string

const (
	FieldID          Field = "Id"
	FieldFirstName   Field = "FirstName"
	FieldLastName    Field = "LastName"
	FieldUserName    Field = "UserName"
	FieldPassword    Field = "Password"
	FieldEmail       Field = "Email"
	FieldSchoolID    Field = "SchoolId"
	FieldOldPassword Field = "OldPassword"
	FieldNewPassword Field = "NewPassword"

	// 传输层失败也复用同一信封
	FieldAuthorization Field = "Authorization"
	FieldRequest       Field = "Request"
)

// Errors 字段 -> 错误码。校验不短路，所有命中的规则都会累积进来。
type Errors map[Field]Code

func New() Errors { return make(Errors) }

func (e Errors) Add(f Field, c Code) { e[f] = c }

func (e Errors) Empty() bool { return len(e) == 0 }

func (e Errors) Has(f Field) bool { _, ok := e[f]; return ok }
