// Package docs classification z/OS jobs gateway API.
//
// This is the API Server for the z/OS jobs gateway. It lists, submits, modifies and purges batch jobs
// and reads their spool output through z/OSMF.
//
//     Schemes: http, https
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs
