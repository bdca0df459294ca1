// Package students reads the student records that certificates are issued to.
package students
