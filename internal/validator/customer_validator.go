package validator

import (
	"regexp"
	"strings"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	tagName  = "customer_name"
	tagEmail = "customer_email"
	tagPhone = "customer_phone"
)

// Шаблоны сопоставляются со всей строкой целиком. Длины считаются в кодовых точках.
// Пробельный класс для имени явно включает \v, которого нет в \s у regexp.
var (
	nameRegex  = regexp.MustCompile(`^[\w\t\n\v\f\r ]{2,50}$`)
	emailRegex = regexp.MustCompile(`^[^@]{1,80}@[^@]{1,19}$`)
	phoneRegex = regexp.MustCompile(`^\+[0-9]{6,13}$`)
)

const (
	msgName  = "must be 2-50 letters, digits, underscores or spaces without leading or trailing whitespace"
	msgEmail = "must contain exactly one '@' with a 1-80 character local part and a 1-19 character domain"
	msgPhone = "must be '+' followed by 6-13 digits"
)

// CustomerValidator проверяет запросы на регистрацию и обновление клиентов
type CustomerValidator struct {
	validate *validator.Validate
}

// New создает валидатор с зарегистрированными правилами для клиента
func New() *CustomerValidator {
	v := validator.New()

	// Ошибки регистрации возможны только при дублировании тегов, поэтому паникуем
	mustRegister(v, tagName, func(fl validator.FieldLevel) bool {
		return isValidName(fl.Field().String())
	})
	mustRegister(v, tagEmail, func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, tagPhone, func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return &CustomerValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func isValidName(name string) bool {
	return nameRegex.MatchString(name) && strings.TrimSpace(name) == name
}

// ValidateRegistration возвращает true, если запрос на регистрацию корректен
func (v *CustomerValidator) ValidateRegistration(dto domain.RegistrationDto) bool {
	return !v.CheckRegistration(dto).HasErrors()
}

// ValidateUpdate возвращает true, если запрос на обновление корректен
func (v *CustomerValidator) ValidateUpdate(dto domain.UpdateDto) bool {
	return !v.CheckUpdate(dto).HasErrors()
}

// CheckRegistration возвращает список нарушенных правил для запроса на регистрацию
func (v *CustomerValidator) CheckRegistration(dto domain.RegistrationDto) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if !v.valid(dto.FullName, tagName) {
		errs.Add("fullName", msgName)
	}
	if !v.valid(dto.Email, tagEmail) {
		errs.Add("email", msgEmail)
	}
	if !v.valid(dto.Phone, tagPhone) {
		errs.Add("phone", msgPhone)
	}

	return errs
}

// CheckUpdate возвращает список нарушенных правил для запроса на обновление.
// Email не проверяется, телефон проверяется только если передан.
func (v *CustomerValidator) CheckUpdate(dto domain.UpdateDto) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if !v.valid(dto.FullName, tagName) {
		errs.Add("fullName", msgName)
	}
	if dto.Phone != nil && !v.valid(*dto.Phone, tagPhone) {
		errs.Add("phone", msgPhone)
	}

	return errs
}

func (v *CustomerValidator) valid(value, tag string) bool {
	return v.validate.Var(value, "required,"+tag) == nil
}
