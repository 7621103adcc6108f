// Package formtext implements the tagged form text grammar used to edit and
// submit records:
//
//	# comment
//	Client:	ws1
//
//	Description:
//		Created by bruno.
//
//	View:
//		//depot/... //ws1/...
//
// Parse turns form text into the flat dictionary a server response carries.
// Format goes the other way from any LineSource.
package formtext
