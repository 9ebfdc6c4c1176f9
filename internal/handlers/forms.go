package handlers

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/services"
)

var telegramPattern = regexp.MustCompile(`^@?\w{5,}`)

// LoginForm is the login page submission
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// Validate returns field messages, empty when valid
func (f *LoginForm) Validate() map[string]string {
	f.Email = strings.TrimSpace(f.Email)
	errs := map[string]string{}
	if !checkout.ValidEmail(f.Email) {
		errs["email"] = "Ingresa un email válido"
	}
	if utf8.RuneCountInString(f.Password) < 4 {
		errs["password"] = "Mínimo 4 caracteres"
	}
	return errs
}

// RegisterForm is the sign-up page submission
type RegisterForm struct {
	Name            string   `form:"name"`
	Lastname        string   `form:"lastname"`
	Email           string   `form:"email"`
	Telegram        string   `form:"telegram"`
	Age             string   `form:"age"`
	Master          []string `form:"master"`
	Password        string   `form:"password"`
	PasswordConfirm string   `form:"passwordConfirm"`
}

// Validate returns field messages, empty when valid
func (f *RegisterForm) Validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Lastname = strings.TrimSpace(f.Lastname)
	f.Email = strings.TrimSpace(f.Email)
	f.Telegram = strings.TrimSpace(f.Telegram)
	f.Age = strings.TrimSpace(f.Age)

	errs := map[string]string{}
	if utf8.RuneCountInString(f.Name) < 2 {
		errs["name"] = "El nombre completo es obligatorio y debe tener al menos 2 caracteres"
	}
	if utf8.RuneCountInString(f.Lastname) < 2 {
		errs["lastname"] = "El apellido es obligatorio"
	}
	if !telegramPattern.MatchString(f.Telegram) {
		errs["telegram"] = "El usuario de Telegram no es válido (ej: @miusuario)"
	}
	if f.Age != "" {
		age, err := strconv.Atoi(f.Age)
		switch {
		case err != nil || age > 100:
			errs["age"] = "Edad inválida"
		case age < 18:
			errs["age"] = "Debes ser mayor de 18 años"
		}
	}
	if len(f.Master) == 0 {
		errs["master"] = "Debes seleccionar al menos una Máster adquirida"
	}
	if !checkout.ValidEmail(f.Email) {
		errs["email"] = "Ingresa un email válido"
	}
	if utf8.RuneCountInString(f.Password) < 6 {
		errs["password"] = "La contraseña debe tener al menos 6 caracteres"
	}
	if f.PasswordConfirm != f.Password {
		errs["passwordConfirm"] = "Las contraseñas no coinciden"
	}
	return errs
}

// Request maps a valid form to the API body
func (f RegisterForm) Request() services.RegisterRequest {
	req := services.RegisterRequest{
		Name:     f.Name,
		Lastname: f.Lastname,
		Telegram: f.Telegram,
		Master:   f.Master,
		Email:    f.Email,
		Password: f.Password,
	}
	if age, err := strconv.Atoi(f.Age); err == nil {
		req.Age = &age
	}
	return req
}

func (f RegisterForm) masterSet() map[string]bool {
	set := make(map[string]bool, len(f.Master))
	for _, slug := range f.Master {
		set[slug] = true
	}
	return set
}

// safeNext keeps post-login redirects on this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/courses"
	}
	return next
}
