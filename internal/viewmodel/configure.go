package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/validators"
)

// ConfigureState is the state of a configure screen building a T and
// saving it as an R.
type ConfigureState[T, R any] struct {
	Form   FormState[T]
	Submit Op[R]
}

// configure is the shared engine of the configure view models.
type configure[T, R any] struct {
	base[ConfigureState[T, R]]
	form   validators.Form[T]
	save   func(ctx context.Context, v T) (R, error)
	submit chan struct{}
}

func newConfigure[T, R any](ctx context.Context, name string, form validators.Form[T], initial T, save func(context.Context, T) (R, error), opts Options) configure[T, R] {
	return configure[T, R]{
		base:   newBase(ctx, name, ConfigureState[T, R]{Form: newFormState(form, initial)}, opts),
		form:   form,
		save:   save,
		submit: make(chan struct{}, 1),
	}
}

// edit changes the value, marks fields as touched and revalidates.
func (c *configure[T, R]) edit(fn func(*T), fields ...string) {
	c.state.update(func(s *ConfigureState[T, R]) {
		s.Form = s.Form.edit(c.form, fn, fields...)
	})
}

// send validates the form and saves it. An invalid form only reveals its
// errors. A form that was already saved is not sent twice.
func (c *configure[T, R]) send() {
	c.scope.launch(func(ctx context.Context) {
		if !lock(ctx, c.submit) {
			return
		}
		defer unlock(c.submit)

		var form FormState[T]
		var already bool
		c.state.update(func(s *ConfigureState[T, R]) {
			s.Form = s.Form.touchAll(c.form)
			form, already = s.Form, s.Submit.Done()
			if form.CanSubmit && !already {
				s.Submit = startOp[R]()
			}
		})
		if !form.CanSubmit || already {
			return
		}

		saved, err := c.save(ctx, form.Value)
		if ctx.Err() != nil {
			return
		}
		c.logFailure(ctx, c.name+".submit", err)
		c.state.update(func(s *ConfigureState[T, R]) { s.Submit = finishOp(saved, err) })
	})
}
