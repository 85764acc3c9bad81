package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

// AuthMode selects between signing in and creating an account.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

// AuthEvent is implemented by EmailChanged, PasswordChanged, NameChanged,
// RoleChanged, ToggleMode and Submit.
type AuthEvent interface{ authEvent() }

type (
	EmailChanged    struct{ Email string }
	PasswordChanged struct{ Password string }
	RoleChanged     struct{ Role models.Role }
	ToggleMode      struct{}
)

func (EmailChanged) authEvent()    {}
func (PasswordChanged) authEvent() {}
func (NameChanged) authEvent()     {}
func (RoleChanged) authEvent()     {}
func (ToggleMode) authEvent()      {}

// AuthState is the state of the auth screen. Both forms are kept so
// switching mode does not lose typed input; email and password are shared.
type AuthState struct {
	Mode     AuthMode
	Login    FormState[models.Credentials]
	Register FormState[models.Registration]

	// SignIn finishes successfully once a session exists, including one
	// restored from the local store at start-up.
	SignIn Op[models.Session]
}

// CanSubmit reports whether the form of the current mode is valid.
func (s AuthState) CanSubmit() bool {
	if s.Mode == ModeRegister {
		return s.Register.CanSubmit
	}
	return s.Login.CanSubmit
}

// Auth handles login and registration.
type Auth struct {
	base[AuthState]
	auth         service.AuthService
	loginForm    validators.Form[models.Credentials]
	registerForm validators.Form[models.Registration]
	submit       chan struct{}
}

// NewAuth creates the view model and tries to restore a stored session.
func NewAuth(ctx context.Context, auth service.AuthService, opts Options) *Auth {
	loginForm, registerForm := validators.LoginForm(), validators.RegisterForm()
	initial := AuthState{
		Login:    newFormState(loginForm, models.Credentials{}),
		Register: newFormState(registerForm, models.Registration{Role: models.RoleOwner}),
	}

	vm := &Auth{
		base:         newBase(ctx, "auth", initial, opts),
		auth:         auth,
		loginForm:    loginForm,
		registerForm: registerForm,
		submit:       make(chan struct{}, 1),
	}
	vm.restore()
	return vm
}

// Handle dispatches ev.
func (vm *Auth) Handle(ev AuthEvent) {
	switch e := ev.(type) {
	case EmailChanged:
		vm.state.update(func(s *AuthState) {
			s.Login = s.Login.edit(vm.loginForm, func(c *models.Credentials) { c.Email = e.Email }, validators.FieldEmail)
			s.Register = s.Register.edit(vm.registerForm, func(r *models.Registration) { r.Email = e.Email }, validators.FieldEmail)
		})
	case PasswordChanged:
		vm.state.update(func(s *AuthState) {
			s.Login = s.Login.edit(vm.loginForm, func(c *models.Credentials) { c.Password = e.Password }, validators.FieldPassword)
			s.Register = s.Register.edit(vm.registerForm, func(r *models.Registration) { r.Password = e.Password }, validators.FieldPassword)
		})
	case NameChanged:
		vm.state.update(func(s *AuthState) {
			s.Register = s.Register.edit(vm.registerForm, func(r *models.Registration) { r.Name = e.Name }, validators.FieldName)
		})
	case RoleChanged:
		vm.state.update(func(s *AuthState) {
			s.Register = s.Register.edit(vm.registerForm, func(r *models.Registration) { r.Role = e.Role }, validators.FieldRole)
		})
	case ToggleMode:
		vm.state.update(func(s *AuthState) {
			if s.Mode == ModeLogin {
				s.Mode = ModeRegister
			} else {
				s.Mode = ModeLogin
			}
			if !s.SignIn.Done() {
				s.SignIn = Op[models.Session]{}
			}
		})
	case Submit:
		vm.send()
	}
}

func (vm *Auth) restore() {
	vm.scope.launch(func(ctx context.Context) {
		session, err := vm.auth.CurrentSession(ctx)
		if err != nil {
			return
		}
		vm.state.update(func(s *AuthState) {
			if !s.SignIn.Started {
				s.SignIn = finishOp(session, nil)
			}
		})
	})
}

func (vm *Auth) send() {
	vm.scope.launch(func(ctx context.Context) {
		if !lock(ctx, vm.submit) {
			return
		}
		defer unlock(vm.submit)

		var snapshot AuthState
		vm.state.update(func(s *AuthState) {
			if s.Mode == ModeRegister {
				s.Register = s.Register.touchAll(vm.registerForm)
			} else {
				s.Login = s.Login.touchAll(vm.loginForm)
			}
			snapshot = *s
			if s.CanSubmit() && !s.SignIn.Done() {
				s.SignIn = startOp[models.Session]()
			}
		})
		if !snapshot.CanSubmit() || snapshot.SignIn.Done() {
			return
		}

		var (
			session models.Session
			err     error
		)
		if snapshot.Mode == ModeRegister {
			session, err = vm.auth.Register(ctx, snapshot.Register.Value)
		} else {
			session, err = vm.auth.Login(ctx, snapshot.Login.Value)
		}
		if ctx.Err() != nil {
			return
		}
		vm.logFailure(ctx, "Auth.send", err)
		vm.state.update(func(s *AuthState) { s.SignIn = finishOp(session, err) })
	})
}
