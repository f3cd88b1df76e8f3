// Package solvent is the Go client for the Solvent API.
//
// Construct a [Client] with [NewClient] and reach every resource through its
// service fields. Requests are validated locally before any network call;
// validation failures surface as *validate.FieldErrors, remote failures as
// *api.Error.
//
// # Quick use
//
// - Create a customer [CustomersService.Create]
//
// - Create a virtual account [VirtualAccountsService.Create]
//
// - Move money [TransfersService.Create]
//
// - Verify a webhook [WebhooksService.Verify]
//
// # Query APIs
//
// - [CustomersService.Get]
//
// - [CustomersService.List]
//
// - [ExternalAccountsService.Get]
//
// - [ExternalAccountsService.List]
//
// - [VirtualAccountsService.Get]
//
// - [VirtualAccountsService.List]
//
// - [VirtualAccountsService.ListActivity]
//
// - [TransfersService.Get]
//
// - [TransfersService.List]
//
// - [WebhooksService.Get]
//
// - [WebhooksService.List]
//
// - [FilesService.Get]
//
// - [DeveloperService.Fees]
//
// - [CrossChainService.Get]
//
// - [CrossChainService.List]
//
// # Command APIs
//
// - [CustomersService.Create]
//
// - [CustomersService.Update]
//
// - [CustomersService.Delete]
//
// - [ExternalAccountsService.Create]
//
// - [ExternalAccountsService.Delete]
//
// - [VirtualAccountsService.Create]
//
// - [VirtualAccountsService.Update]
//
// - [TransfersService.Create]
//
// - [TransfersService.Delete]
//
// - [WebhooksService.Create]
//
// - [WebhooksService.Update]
//
// - [WebhooksService.Delete]
//
// - [FilesService.Upload]
//
// - [DeveloperService.UpdateFees]
//
// - [CrossChainService.Create]
//
// - [CrossChainService.Complete]
//
// - [WalletsService.Verify]
//
// On-chain interaction (wallets, tokens, contracts, transactions, ENS) lives
// in the chain subpackage.
package solvent
