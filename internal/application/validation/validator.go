package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/seu-usuario/clientes-api/internal/application/dto"
)

// Padrões dos campos brasileiros. A alternativa ^$ aceita o vazio: campo
// ausente é reportado só pelo required, nunca pelas regras de formato.
var (
	phonePattern = regexp.MustCompile(`^$|^\(\d{2}\) \d{4}-\d{4}$`)
	cpfPattern   = regexp.MustCompile(`^$|^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

// Validator valida os bodies de requisição e devolve as violações como
// uma lista de mensagens em português, pronta para o envelope de erro.
type Validator struct {
	validate *validator.Validate
}

// New constrói o validador com os validadores customizados registrados.
func New() (*Validator, error) {
	v := validator.New()

	// Nos erros, usar o nome do campo como aparece no JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("telefone_br", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registrar telefone_br: %w", err)
	}
	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpfPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registrar cpf: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Customer valida o body de cliente. Lista vazia significa body válido.
func (v *Validator) Customer(in dto.CustomerRequest) []string {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Erro na requisição."}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, violationMessage(e))
	}
	return out
}

// violationMessage traduz a violação para a mensagem exibida ao chamador.
func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", e.Field())
	case "email":
		return fmt.Sprintf("O campo %s deve ser um e-mail válido.", e.Field())
	case "telefone_br":
		return fmt.Sprintf("O campo %s deve estar no formato (99) 9999-9999.", e.Field())
	case "cpf":
		return fmt.Sprintf("O campo %s deve estar no formato 999.999.999-99.", e.Field())
	default:
		return fmt.Sprintf("O campo %s é inválido.", e.Field())
	}
}
