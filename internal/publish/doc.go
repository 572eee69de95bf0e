// Package publish sends gate verdicts to a Redis stream.
//
// Each run produces one stream entry whose "data" field holds the JSON encoded
// Event, so dashboards and trend jobs can follow thresholds across builds without
// parsing CI logs.
//
// Example usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	publisher := publish.NewPublisher(client, "stats-gate.verdicts", 5*time.Second, logger)
//
//	event := publish.NewEvent("statistics.json", "Total.errorPct<5", verdict)
//	if err := publisher.Publish(ctx, event); err != nil {
//	    logger.Warn("verdict not published", zap.Error(err))
//	}
package publish
