/*
Project: Escola - school management front-end (students & classes).
Data comes from a static mock store until the backend API is ready.
*/
package escola

/*
TODO: remote data source
- map *apiclient.StatusError to 502 Bad Gateway in the web error handler (currently 500)
- pages still read the mock store directly: switch them to the services once the mock store goes away

TODO: integrity
- no enrollment count is modeled yet, so max_students is only checked to be positive
*/
