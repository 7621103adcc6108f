// Package record rebuilds structured records from flat server dictionaries.
//
// Keys encode structure in their suffix: "Client" is a scalar, "View3" is the
// fourth element of the View list and "depotFile1,0" is element 0 of the list
// at position 1 of depotFile. Builder walks a dictionary in order and
// auto-vivifies the nested lists, leaving unaddressed positions empty. Name
// clashes between scalar and list usage of one base name are resolved without
// losing data and reported through a Report.
//
// The accessor functions (GetScalar, GetListElement, SetScalar,
// SetListElement) work against the Store interface rather than *Record.
package record
