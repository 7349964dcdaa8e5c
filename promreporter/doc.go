// Package promreporter exposes validation outcomes as Prometheus counters.
//
// The reporter satisfies validkit.Reporter and partitions counts by record
// type, field path and check type:
//
//	reg := prometheus.NewRegistry()
//	rep, err := promreporter.New(reg, "myapp")
//	if err != nil {
//		// a collector with the same name is already registered
//	}
//
//	res, err := userValidator.ValidateRecord(user, "", "", cfg, rep)
//
// Counter names follow the <namespace>_validation_{valid,invalid}_total
// convention. Reporting never blocks and never fails the traversal.
package promreporter
