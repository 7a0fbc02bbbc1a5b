// Package store contiene el acceso a datos del catálogo y los pedidos.
package store

import "fmt"

// StorageError envuelve cualquier falla de la capa de almacenamiento.
// Los stores nunca la tragan: siempre sube hasta el handler, que arma
// la respuesta 500 con el detalle.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError marca un campo requerido ausente o en blanco.
// Se detecta antes de tocar la base.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo %q inválido: %s", e.Field, e.Reason)
}
