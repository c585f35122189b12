// Package mongo bootstraps the MongoDB connection backing the user record
// store. Configuration comes entirely from the environment, and connects
// retry a few times before failing so a briefly unavailable database does
// not kill the process at startup.
//
// Usage:
//
//	var cfg mongo.Config
//	// populate cfg from the environment, see pkg/config
//
//	db, err := mongo.ConnectDatabase(ctx, cfg, "ubora")
//	if err != nil {
//		return err
//	}
//
//	store := mongostore.New(db, mongostore.DefaultCollection)
//
// Healthcheck wraps the client's ping for readiness probes:
//
//	check := mongo.Healthcheck(db.Client())
//	if err := check(ctx); err != nil {
//		log.Error("mongo unavailable", "error", err)
//	}
package mongo
