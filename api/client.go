package api

// API Dispatcher-
//
// Files:
//   config.go    - Environments, base URLs and default settings
//   base.go      - Core client functionality (client struct, New, Do, Upload)
//   errors.go    - Error taxonomy (remote API errors, timeout sentinel)
//
// Usage:
//   client, err := api.New(api.Config{APIKey: "sk-..."})  // from base.go
//   err = client.Do(ctx, "GET", "/customers", nil, &out)  // JSON round trip
//   err = client.Upload(ctx, "/files", name, r, &out)     // multipart upload
