package entity

import "time"

// Sector sector de la ONG al que pertenece un colaborador.
// Dato maestro: se consume en reportes y como referencia.
type Sector struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
