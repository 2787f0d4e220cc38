// Package template is the glue between generated template code and the
// render runtime.
//
// A code generator emits one Func per template. Wrapping it with New gives
// a Compiled template that remembers the largest output it has produced and
// allocates for it up front on the next call:
//
//	var page = template.New("page.html", func(b *buffer.Buffer) error {
//		b.PushString("<p>")
//		if err := render.Str(name).RenderEscaped(b); err != nil {
//			return err
//		}
//		b.PushString("</p>")
//		return nil
//	})
//
//	html, err := page.Render()
//
// Failures are returned as *errors.Error in the template phase with the
// template name as the path, and logged at debug level through Logger.
package template
