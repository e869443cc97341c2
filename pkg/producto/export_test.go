package producto

import "time"

func SetClock(s ProductoService, now func() time.Time) {
	s.(*productoService).now = now
}
