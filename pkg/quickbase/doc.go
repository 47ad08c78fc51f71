// Package quickbase is a client for the Quickbase REST API
// (https://api.quickbase.com/v1).
//
// # Overview
//
// A Client holds an immutable Config and exposes one generic primitive, Do,
// plus typed operations that validate their arguments, shape the JSON body
// and hand the raw *Response back:
//
//	GET  /apps/{appId}                      GetApp
//	GET  /tables/{tableId}?appId={appId}    GetTable
//	POST /tables?appId={appId}              CreateTable
//	POST /tables/{tableId}?appId={appId}    UpdateTable
//	GET  /reports?tableId={tableId}         ListReports
//	GET  /reports/{reportId}?tableId={id}   GetReport
//	POST /records/query                     QueryRecords
//	POST /records                           UpsertRecords
//
// Every request carries QB-Realm-Hostname, User-Agent,
// "Authorization: QB-USER-TOKEN <token>" and "Content-Type: application/json".
//
// # Query bodies
//
// QuerySpec serializes with keys from, select, where, sortBy, groupBy and an
// optional options, in that order. A nil SortBy or GroupBy is sent as [{}].
// A nil Options is left out.
//
//	resp, err := client.QueryRecords(ctx, quickbase.QuerySpec{
//		From:   "bqz9",
//		Select: []quickbase.FieldID{3, 6},
//		Where:  "{3.EX.'abc'}",
//	})
//	// {"from":"bqz9","select":[3,6],"where":"{3.EX.'abc'}","sortBy":[{}],"groupBy":[{}]}
//
// # Errors
//
// Bad input fails with an error matching ErrInvalidArgument before anything
// is sent. A request that does not complete fails with a *TransportError
// (matching ErrTransport) after one diagnostic is logged. Non-2xx replies are
// not errors: the Response is returned and Response.Err describes it.
//
// There are no retries, caches or pagination helpers.
package quickbase
