package dic

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sarulabs/di/v2"
	"github.com/sarulabs/dingo/v4"

	providerPkg "github.com/ZilDuck/zilliqa-nft-marketplace/internal/config/di"

	api "github.com/ZilDuck/zilliqa-nft-marketplace/internal/api"
	daemon "github.com/ZilDuck/zilliqa-nft-marketplace/internal/daemon"
	elasticsearch "github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	indexer "github.com/ZilDuck/zilliqa-nft-marketplace/internal/indexer"
	ledger "github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	marketplace "github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	messenger "github.com/ZilDuck/zilliqa-nft-marketplace/internal/messenger"
	repository "github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
	zilliqa "github.com/ZilDuck/zilliqa-nft-marketplace/internal/zilliqa"
	gocache "github.com/patrickmn/go-cache"
)

// C retrieves a Container from an interface.
// The function panics if the Container can not be retrieved.
//
// The interface can be :
//   - a *Container
//   - an *http.Request containing a *Container in its context.Context
//     for the dingo.ContainerKey("dingo") key.
//
// The function can be changed to match the needs of your application.
var C = func(i interface{}) *Container {
	if c, ok := i.(*Container); ok {
		return c
	}
	r, ok := i.(*http.Request)
	if !ok {
		panic("could not get the container with dic.C()")
	}
	c, ok := r.Context().Value(dingo.ContainerKey("dingo")).(*Container)
	if !ok {
		panic("could not get the container from the given *http.Request in dic.C()")
	}
	return c
}

type builder struct {
	builder *di.Builder
}

// NewBuilder creates a builder that can be used to create a Container.
// You probably should use NewContainer to create the container directly.
// But using NewBuilder allows you to redefine some di services.
// This can be used for testing.
// But this behavior is not safe, so be sure to know what you are doing.
func NewBuilder(scopes ...string) (*builder, error) {
	if len(scopes) == 0 {
		scopes = []string{di.App, di.Request, di.SubRequest}
	}
	b, err := di.NewBuilder(scopes...)
	if err != nil {
		return nil, fmt.Errorf("could not create di.Builder: %v", err)
	}
	provider := &providerPkg.Provider{}
	if err := provider.Load(); err != nil {
		return nil, fmt.Errorf("could not load definitions with the Provider (Provider from github.com/ZilDuck/zilliqa-nft-marketplace/internal/config/di): %v", err)
	}
	for _, d := range getDiDefs(provider) {
		if err := b.Add(d); err != nil {
			return nil, fmt.Errorf("could not add di.Def in di.Builder: %v", err)
		}
	}
	return &builder{builder: b}, nil
}

// Add adds one or more definitions in the Builder.
// It returns an error if a definition can not be added.
func (b *builder) Add(defs ...di.Def) error {
	return b.builder.Add(defs...)
}

// Set is a shortcut to add a definition for an already built object.
func (b *builder) Set(name string, obj interface{}) error {
	return b.builder.Set(name, obj)
}

// Build creates a Container in the most generic scope.
func (b *builder) Build() *Container {
	return &Container{ctn: b.builder.Build()}
}

// NewContainer creates a new Container.
// If no scope is provided, di.App, di.Request and di.SubRequest are used.
// The returned Container has the most generic scope (di.App).
// The SubContainer() method should be called to get a Container in a more specific scope.
func NewContainer(scopes ...string) (*Container, error) {
	b, err := NewBuilder(scopes...)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Container represents a generated dependency injection container.
// It is a wrapper around a di.Container.
//
// A Container has a scope and may have a parent in a more generic scope
// and children in a more specific scope.
// Objects can be retrieved from the Container.
// If the requested object does not already exist in the Container,
// it is built thanks to the object definition.
// The following attempts to get this object will return the same object.
type Container struct {
	ctn di.Container
}

// Scope returns the Container scope.
func (c *Container) Scope() string {
	return c.ctn.Scope()
}

// Scopes returns the list of available scopes.
func (c *Container) Scopes() []string {
	return c.ctn.Scopes()
}

// ParentScopes returns the list of scopes wider than the Container scope.
func (c *Container) ParentScopes() []string {
	return c.ctn.ParentScopes()
}

// SubScopes returns the list of scopes that are more specific than the Container scope.
func (c *Container) SubScopes() []string {
	return c.ctn.SubScopes()
}

// Parent returns the parent Container.
func (c *Container) Parent() *Container {
	if p := c.ctn.Parent(); p != nil {
		return &Container{ctn: p}
	}
	return nil
}

// SubContainer creates a new Container in the next sub-scope
// that will have this Container as parent.
func (c *Container) SubContainer() (*Container, error) {
	sub, err := c.ctn.SubContainer()
	if err != nil {
		return nil, err
	}
	return &Container{ctn: sub}, nil
}

// SafeGet retrieves an object from the Container.
// The object has to belong to this scope or a more generic one.
// If the object does not already exist, it is created and saved in the Container.
// If the object can not be created, it returns an error.
func (c *Container) SafeGet(name string) (interface{}, error) {
	return c.ctn.SafeGet(name)
}

// Get is similar to SafeGet but it does not return the error.
// Instead it panics.
func (c *Container) Get(name string) interface{} {
	return c.ctn.Get(name)
}

// Fill is similar to SafeGet but it does not return the object.
// Instead it fills the provided object with the value returned by SafeGet.
// The provided object must be a pointer to the value returned by SafeGet.
func (c *Container) Fill(name string, dst interface{}) error {
	return c.ctn.Fill(name, dst)
}

// UnscopedSafeGet retrieves an object from the Container, like SafeGet.
// The difference is that the object can be retrieved
// even if it belongs to a more specific scope.
// To do so, UnscopedSafeGet creates a sub-container.
// When the created object is no longer needed,
// it is important to use the Clean method to delete this sub-container.
func (c *Container) UnscopedSafeGet(name string) (interface{}, error) {
	return c.ctn.UnscopedSafeGet(name)
}

// UnscopedGet is similar to UnscopedSafeGet but it does not return the error.
// Instead it panics.
func (c *Container) UnscopedGet(name string) interface{} {
	return c.ctn.UnscopedGet(name)
}

// UnscopedFill is similar to UnscopedSafeGet but copies the object in dst instead of returning it.
func (c *Container) UnscopedFill(name string, dst interface{}) error {
	return c.ctn.UnscopedFill(name, dst)
}

// Clean deletes the sub-container created by UnscopedSafeGet, UnscopedGet or UnscopedFill.
func (c *Container) Clean() error {
	return c.ctn.Clean()
}

// DeleteWithSubContainers takes all the objects saved in this Container
// and calls the Close function of their Definition on them.
// It will also call DeleteWithSubContainers on each child and remove its reference in the parent Container.
// After deletion, the Container can no longer be used.
// The sub-containers are deleted even if they are still used in other goroutines.
// It can cause errors. You may want to use the Delete method instead.
func (c *Container) DeleteWithSubContainers() error {
	return c.ctn.DeleteWithSubContainers()
}

// Delete works like DeleteWithSubContainers if the Container does not have any child.
// But if the Container has sub-containers, it will not be deleted right away.
// The deletion only occurs when all the sub-containers have been deleted manually.
// So you have to call Delete or DeleteWithSubContainers on all the sub-containers.
func (c *Container) Delete() error {
	return c.ctn.Delete()
}

// IsClosed returns true if the Container has been deleted.
func (c *Container) IsClosed() bool {
	return c.ctn.IsClosed()
}

// SafeGetActionIndexer retrieves the "action.indexer" object from the main scope.
//
// ---------------------------------------------
//
//	name: "action.indexer"
//	type: indexer.ActionIndexer
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(messenger.MessageService) ["messenger"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetActionIndexer() (indexer.ActionIndexer, error) {
	i, err := c.ctn.SafeGet("action.indexer")
	if err != nil {
		var eo indexer.ActionIndexer
		return eo, err
	}
	o, ok := i.(indexer.ActionIndexer)
	if !ok {
		return o, errors.New("could get 'action.indexer' because the object could not be cast to indexer.ActionIndexer")
	}
	return o, nil
}

// GetActionIndexer retrieves the "action.indexer" object from the main scope.
//
// ---------------------------------------------
//
//	name: "action.indexer"
//	type: indexer.ActionIndexer
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(messenger.MessageService) ["messenger"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetActionIndexer() indexer.ActionIndexer {
	o, err := c.SafeGetActionIndexer()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetActionIndexer retrieves the "action.indexer" object from the main scope.
//
// ---------------------------------------------
//
//	name: "action.indexer"
//	type: indexer.ActionIndexer
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(messenger.MessageService) ["messenger"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetActionIndexer() (indexer.ActionIndexer, error) {
	i, err := c.ctn.UnscopedSafeGet("action.indexer")
	if err != nil {
		var eo indexer.ActionIndexer
		return eo, err
	}
	o, ok := i.(indexer.ActionIndexer)
	if !ok {
		return o, errors.New("could get 'action.indexer' because the object could not be cast to indexer.ActionIndexer")
	}
	return o, nil
}

// UnscopedGetActionIndexer retrieves the "action.indexer" object from the main scope.
//
// ---------------------------------------------
//
//	name: "action.indexer"
//	type: indexer.ActionIndexer
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(messenger.MessageService) ["messenger"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetActionIndexer() indexer.ActionIndexer {
	o, err := c.UnscopedSafeGetActionIndexer()
	if err != nil {
		panic(err)
	}
	return o
}

// ActionIndexer retrieves the "action.indexer" object from the main scope.
//
// ---------------------------------------------
//
//	name: "action.indexer"
//	type: indexer.ActionIndexer
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(messenger.MessageService) ["messenger"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetActionIndexer method.
// If the container can not be retrieved, it panics.
func ActionIndexer(i interface{}) indexer.ActionIndexer {
	return C(i).GetActionIndexer()
}

// SafeGetApi retrieves the "api" object from the main scope.
//
// ---------------------------------------------
//
//	name: "api"
//	type: api.Server
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*marketplace.Marketplace) ["marketplace"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetApi() (api.Server, error) {
	i, err := c.ctn.SafeGet("api")
	if err != nil {
		var eo api.Server
		return eo, err
	}
	o, ok := i.(api.Server)
	if !ok {
		return o, errors.New("could get 'api' because the object could not be cast to api.Server")
	}
	return o, nil
}

// GetApi retrieves the "api" object from the main scope.
//
// ---------------------------------------------
//
//	name: "api"
//	type: api.Server
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*marketplace.Marketplace) ["marketplace"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetApi() api.Server {
	o, err := c.SafeGetApi()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetApi retrieves the "api" object from the main scope.
//
// ---------------------------------------------
//
//	name: "api"
//	type: api.Server
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*marketplace.Marketplace) ["marketplace"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetApi() (api.Server, error) {
	i, err := c.ctn.UnscopedSafeGet("api")
	if err != nil {
		var eo api.Server
		return eo, err
	}
	o, ok := i.(api.Server)
	if !ok {
		return o, errors.New("could get 'api' because the object could not be cast to api.Server")
	}
	return o, nil
}

// UnscopedGetApi retrieves the "api" object from the main scope.
//
// ---------------------------------------------
//
//	name: "api"
//	type: api.Server
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*marketplace.Marketplace) ["marketplace"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetApi() api.Server {
	o, err := c.UnscopedSafeGetApi()
	if err != nil {
		panic(err)
	}
	return o
}

// Api retrieves the "api" object from the main scope.
//
// ---------------------------------------------
//
//	name: "api"
//	type: api.Server
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*marketplace.Marketplace) ["marketplace"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetApi method.
// If the container can not be retrieved, it panics.
func Api(i interface{}) api.Server {
	return C(i).GetApi()
}

// SafeGetCache retrieves the "cache" object from the main scope.
//
// ---------------------------------------------
//
//	name: "cache"
//	type: *gocache.Cache
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetCache() (*gocache.Cache, error) {
	i, err := c.ctn.SafeGet("cache")
	if err != nil {
		var eo *gocache.Cache
		return eo, err
	}
	o, ok := i.(*gocache.Cache)
	if !ok {
		return o, errors.New("could get 'cache' because the object could not be cast to *gocache.Cache")
	}
	return o, nil
}

// GetCache retrieves the "cache" object from the main scope.
//
// ---------------------------------------------
//
//	name: "cache"
//	type: *gocache.Cache
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetCache() *gocache.Cache {
	o, err := c.SafeGetCache()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetCache retrieves the "cache" object from the main scope.
//
// ---------------------------------------------
//
//	name: "cache"
//	type: *gocache.Cache
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetCache() (*gocache.Cache, error) {
	i, err := c.ctn.UnscopedSafeGet("cache")
	if err != nil {
		var eo *gocache.Cache
		return eo, err
	}
	o, ok := i.(*gocache.Cache)
	if !ok {
		return o, errors.New("could get 'cache' because the object could not be cast to *gocache.Cache")
	}
	return o, nil
}

// UnscopedGetCache retrieves the "cache" object from the main scope.
//
// ---------------------------------------------
//
//	name: "cache"
//	type: *gocache.Cache
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetCache() *gocache.Cache {
	o, err := c.UnscopedSafeGetCache()
	if err != nil {
		panic(err)
	}
	return o
}

// Cache retrieves the "cache" object from the main scope.
//
// ---------------------------------------------
//
//	name: "cache"
//	type: *gocache.Cache
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetCache method.
// If the container can not be retrieved, it panics.
func Cache(i interface{}) *gocache.Cache {
	return C(i).GetCache()
}

// SafeGetCollectionRepo retrieves the "collection.repo" object from the main scope.
//
// ---------------------------------------------
//
//	name: "collection.repo"
//	type: repository.CollectionRepository
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(*gocache.Cache) ["cache"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetCollectionRepo() (repository.CollectionRepository, error) {
	i, err := c.ctn.SafeGet("collection.repo")
	if err != nil {
		var eo repository.CollectionRepository
		return eo, err
	}
	o, ok := i.(repository.CollectionRepository)
	if !ok {
		return o, errors.New("could get 'collection.repo' because the object could not be cast to repository.CollectionRepository")
	}
	return o, nil
}

// GetCollectionRepo retrieves the "collection.repo" object from the main scope.
//
// ---------------------------------------------
//
//	name: "collection.repo"
//	type: repository.CollectionRepository
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(*gocache.Cache) ["cache"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetCollectionRepo() repository.CollectionRepository {
	o, err := c.SafeGetCollectionRepo()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetCollectionRepo retrieves the "collection.repo" object from the main scope.
//
// ---------------------------------------------
//
//	name: "collection.repo"
//	type: repository.CollectionRepository
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(*gocache.Cache) ["cache"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetCollectionRepo() (repository.CollectionRepository, error) {
	i, err := c.ctn.UnscopedSafeGet("collection.repo")
	if err != nil {
		var eo repository.CollectionRepository
		return eo, err
	}
	o, ok := i.(repository.CollectionRepository)
	if !ok {
		return o, errors.New("could get 'collection.repo' because the object could not be cast to repository.CollectionRepository")
	}
	return o, nil
}

// UnscopedGetCollectionRepo retrieves the "collection.repo" object from the main scope.
//
// ---------------------------------------------
//
//	name: "collection.repo"
//	type: repository.CollectionRepository
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(*gocache.Cache) ["cache"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetCollectionRepo() repository.CollectionRepository {
	o, err := c.UnscopedSafeGetCollectionRepo()
	if err != nil {
		panic(err)
	}
	return o
}

// CollectionRepo retrieves the "collection.repo" object from the main scope.
//
// ---------------------------------------------
//
//	name: "collection.repo"
//	type: repository.CollectionRepository
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//		- "1": Service(*gocache.Cache) ["cache"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetCollectionRepo method.
// If the container can not be retrieved, it panics.
func CollectionRepo(i interface{}) repository.CollectionRepository {
	return C(i).GetCollectionRepo()
}

// SafeGetDaemon retrieves the "daemon" object from the main scope.
//
// ---------------------------------------------
//
//	name: "daemon"
//	type: *daemon.Daemon
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetDaemon() (*daemon.Daemon, error) {
	i, err := c.ctn.SafeGet("daemon")
	if err != nil {
		var eo *daemon.Daemon
		return eo, err
	}
	o, ok := i.(*daemon.Daemon)
	if !ok {
		return o, errors.New("could get 'daemon' because the object could not be cast to *daemon.Daemon")
	}
	return o, nil
}

// GetDaemon retrieves the "daemon" object from the main scope.
//
// ---------------------------------------------
//
//	name: "daemon"
//	type: *daemon.Daemon
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetDaemon() *daemon.Daemon {
	o, err := c.SafeGetDaemon()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetDaemon retrieves the "daemon" object from the main scope.
//
// ---------------------------------------------
//
//	name: "daemon"
//	type: *daemon.Daemon
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetDaemon() (*daemon.Daemon, error) {
	i, err := c.ctn.UnscopedSafeGet("daemon")
	if err != nil {
		var eo *daemon.Daemon
		return eo, err
	}
	o, ok := i.(*daemon.Daemon)
	if !ok {
		return o, errors.New("could get 'daemon' because the object could not be cast to *daemon.Daemon")
	}
	return o, nil
}

// UnscopedGetDaemon retrieves the "daemon" object from the main scope.
//
// ---------------------------------------------
//
//	name: "daemon"
//	type: *daemon.Daemon
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetDaemon() *daemon.Daemon {
	o, err := c.UnscopedSafeGetDaemon()
	if err != nil {
		panic(err)
	}
	return o
}

// Daemon retrieves the "daemon" object from the main scope.
//
// ---------------------------------------------
//
//	name: "daemon"
//	type: *daemon.Daemon
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(elasticsearch.Index) ["elastic"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetDaemon method.
// If the container can not be retrieved, it panics.
func Daemon(i interface{}) *daemon.Daemon {
	return C(i).GetDaemon()
}

// SafeGetElastic retrieves the "elastic" object from the main scope.
//
// ---------------------------------------------
//
//	name: "elastic"
//	type: elasticsearch.Index
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetElastic() (elasticsearch.Index, error) {
	i, err := c.ctn.SafeGet("elastic")
	if err != nil {
		var eo elasticsearch.Index
		return eo, err
	}
	o, ok := i.(elasticsearch.Index)
	if !ok {
		return o, errors.New("could get 'elastic' because the object could not be cast to elasticsearch.Index")
	}
	return o, nil
}

// GetElastic retrieves the "elastic" object from the main scope.
//
// ---------------------------------------------
//
//	name: "elastic"
//	type: elasticsearch.Index
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetElastic() elasticsearch.Index {
	o, err := c.SafeGetElastic()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetElastic retrieves the "elastic" object from the main scope.
//
// ---------------------------------------------
//
//	name: "elastic"
//	type: elasticsearch.Index
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetElastic() (elasticsearch.Index, error) {
	i, err := c.ctn.UnscopedSafeGet("elastic")
	if err != nil {
		var eo elasticsearch.Index
		return eo, err
	}
	o, ok := i.(elasticsearch.Index)
	if !ok {
		return o, errors.New("could get 'elastic' because the object could not be cast to elasticsearch.Index")
	}
	return o, nil
}

// UnscopedGetElastic retrieves the "elastic" object from the main scope.
//
// ---------------------------------------------
//
//	name: "elastic"
//	type: elasticsearch.Index
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetElastic() elasticsearch.Index {
	o, err := c.UnscopedSafeGetElastic()
	if err != nil {
		panic(err)
	}
	return o
}

// Elastic retrieves the "elastic" object from the main scope.
//
// ---------------------------------------------
//
//	name: "elastic"
//	type: elasticsearch.Index
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetElastic method.
// If the container can not be retrieved, it panics.
func Elastic(i interface{}) elasticsearch.Index {
	return C(i).GetElastic()
}

// SafeGetGateway retrieves the "gateway" object from the main scope.
//
// ---------------------------------------------
//
//	name: "gateway"
//	type: zilliqa.Gateway
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*zilliqa.Provider) ["zilliqa"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetGateway() (zilliqa.Gateway, error) {
	i, err := c.ctn.SafeGet("gateway")
	if err != nil {
		var eo zilliqa.Gateway
		return eo, err
	}
	o, ok := i.(zilliqa.Gateway)
	if !ok {
		return o, errors.New("could get 'gateway' because the object could not be cast to zilliqa.Gateway")
	}
	return o, nil
}

// GetGateway retrieves the "gateway" object from the main scope.
//
// ---------------------------------------------
//
//	name: "gateway"
//	type: zilliqa.Gateway
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*zilliqa.Provider) ["zilliqa"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetGateway() zilliqa.Gateway {
	o, err := c.SafeGetGateway()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetGateway retrieves the "gateway" object from the main scope.
//
// ---------------------------------------------
//
//	name: "gateway"
//	type: zilliqa.Gateway
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*zilliqa.Provider) ["zilliqa"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetGateway() (zilliqa.Gateway, error) {
	i, err := c.ctn.UnscopedSafeGet("gateway")
	if err != nil {
		var eo zilliqa.Gateway
		return eo, err
	}
	o, ok := i.(zilliqa.Gateway)
	if !ok {
		return o, errors.New("could get 'gateway' because the object could not be cast to zilliqa.Gateway")
	}
	return o, nil
}

// UnscopedGetGateway retrieves the "gateway" object from the main scope.
//
// ---------------------------------------------
//
//	name: "gateway"
//	type: zilliqa.Gateway
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*zilliqa.Provider) ["zilliqa"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetGateway() zilliqa.Gateway {
	o, err := c.UnscopedSafeGetGateway()
	if err != nil {
		panic(err)
	}
	return o
}

// Gateway retrieves the "gateway" object from the main scope.
//
// ---------------------------------------------
//
//	name: "gateway"
//	type: zilliqa.Gateway
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(*zilliqa.Provider) ["zilliqa"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetGateway method.
// If the container can not be retrieved, it panics.
func Gateway(i interface{}) zilliqa.Gateway {
	return C(i).GetGateway()
}

// SafeGetLedger retrieves the "ledger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "ledger"
//	type: ledger.Ledger
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetLedger() (ledger.Ledger, error) {
	i, err := c.ctn.SafeGet("ledger")
	if err != nil {
		var eo ledger.Ledger
		return eo, err
	}
	o, ok := i.(ledger.Ledger)
	if !ok {
		return o, errors.New("could get 'ledger' because the object could not be cast to ledger.Ledger")
	}
	return o, nil
}

// GetLedger retrieves the "ledger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "ledger"
//	type: ledger.Ledger
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetLedger() ledger.Ledger {
	o, err := c.SafeGetLedger()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetLedger retrieves the "ledger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "ledger"
//	type: ledger.Ledger
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetLedger() (ledger.Ledger, error) {
	i, err := c.ctn.UnscopedSafeGet("ledger")
	if err != nil {
		var eo ledger.Ledger
		return eo, err
	}
	o, ok := i.(ledger.Ledger)
	if !ok {
		return o, errors.New("could get 'ledger' because the object could not be cast to ledger.Ledger")
	}
	return o, nil
}

// UnscopedGetLedger retrieves the "ledger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "ledger"
//	type: ledger.Ledger
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetLedger() ledger.Ledger {
	o, err := c.UnscopedSafeGetLedger()
	if err != nil {
		panic(err)
	}
	return o
}

// Ledger retrieves the "ledger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "ledger"
//	type: ledger.Ledger
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetLedger method.
// If the container can not be retrieved, it panics.
func Ledger(i interface{}) ledger.Ledger {
	return C(i).GetLedger()
}

// SafeGetMarketplace retrieves the "marketplace" object from the main scope.
//
// ---------------------------------------------
//
//	name: "marketplace"
//	type: *marketplace.Marketplace
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(ledger.Ledger) ["ledger"]
//		- "1": Service(zilliqa.Gateway) ["gateway"]
//		- "2": Service(repository.CollectionRepository) ["collection.repo"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetMarketplace() (*marketplace.Marketplace, error) {
	i, err := c.ctn.SafeGet("marketplace")
	if err != nil {
		var eo *marketplace.Marketplace
		return eo, err
	}
	o, ok := i.(*marketplace.Marketplace)
	if !ok {
		return o, errors.New("could get 'marketplace' because the object could not be cast to *marketplace.Marketplace")
	}
	return o, nil
}

// GetMarketplace retrieves the "marketplace" object from the main scope.
//
// ---------------------------------------------
//
//	name: "marketplace"
//	type: *marketplace.Marketplace
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(ledger.Ledger) ["ledger"]
//		- "1": Service(zilliqa.Gateway) ["gateway"]
//		- "2": Service(repository.CollectionRepository) ["collection.repo"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetMarketplace() *marketplace.Marketplace {
	o, err := c.SafeGetMarketplace()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetMarketplace retrieves the "marketplace" object from the main scope.
//
// ---------------------------------------------
//
//	name: "marketplace"
//	type: *marketplace.Marketplace
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(ledger.Ledger) ["ledger"]
//		- "1": Service(zilliqa.Gateway) ["gateway"]
//		- "2": Service(repository.CollectionRepository) ["collection.repo"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetMarketplace() (*marketplace.Marketplace, error) {
	i, err := c.ctn.UnscopedSafeGet("marketplace")
	if err != nil {
		var eo *marketplace.Marketplace
		return eo, err
	}
	o, ok := i.(*marketplace.Marketplace)
	if !ok {
		return o, errors.New("could get 'marketplace' because the object could not be cast to *marketplace.Marketplace")
	}
	return o, nil
}

// UnscopedGetMarketplace retrieves the "marketplace" object from the main scope.
//
// ---------------------------------------------
//
//	name: "marketplace"
//	type: *marketplace.Marketplace
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(ledger.Ledger) ["ledger"]
//		- "1": Service(zilliqa.Gateway) ["gateway"]
//		- "2": Service(repository.CollectionRepository) ["collection.repo"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetMarketplace() *marketplace.Marketplace {
	o, err := c.UnscopedSafeGetMarketplace()
	if err != nil {
		panic(err)
	}
	return o
}

// Marketplace retrieves the "marketplace" object from the main scope.
//
// ---------------------------------------------
//
//	name: "marketplace"
//	type: *marketplace.Marketplace
//	scope: "main"
//	build: func
//	params:
//		- "0": Service(ledger.Ledger) ["ledger"]
//		- "1": Service(zilliqa.Gateway) ["gateway"]
//		- "2": Service(repository.CollectionRepository) ["collection.repo"]
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetMarketplace method.
// If the container can not be retrieved, it panics.
func Marketplace(i interface{}) *marketplace.Marketplace {
	return C(i).GetMarketplace()
}

// SafeGetMessenger retrieves the "messenger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "messenger"
//	type: messenger.MessageService
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetMessenger() (messenger.MessageService, error) {
	i, err := c.ctn.SafeGet("messenger")
	if err != nil {
		var eo messenger.MessageService
		return eo, err
	}
	o, ok := i.(messenger.MessageService)
	if !ok {
		return o, errors.New("could get 'messenger' because the object could not be cast to messenger.MessageService")
	}
	return o, nil
}

// GetMessenger retrieves the "messenger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "messenger"
//	type: messenger.MessageService
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetMessenger() messenger.MessageService {
	o, err := c.SafeGetMessenger()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetMessenger retrieves the "messenger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "messenger"
//	type: messenger.MessageService
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetMessenger() (messenger.MessageService, error) {
	i, err := c.ctn.UnscopedSafeGet("messenger")
	if err != nil {
		var eo messenger.MessageService
		return eo, err
	}
	o, ok := i.(messenger.MessageService)
	if !ok {
		return o, errors.New("could get 'messenger' because the object could not be cast to messenger.MessageService")
	}
	return o, nil
}

// UnscopedGetMessenger retrieves the "messenger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "messenger"
//	type: messenger.MessageService
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetMessenger() messenger.MessageService {
	o, err := c.UnscopedSafeGetMessenger()
	if err != nil {
		panic(err)
	}
	return o
}

// Messenger retrieves the "messenger" object from the main scope.
//
// ---------------------------------------------
//
//	name: "messenger"
//	type: messenger.MessageService
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetMessenger method.
// If the container can not be retrieved, it panics.
func Messenger(i interface{}) messenger.MessageService {
	return C(i).GetMessenger()
}

// SafeGetZilliqa retrieves the "zilliqa" object from the main scope.
//
// ---------------------------------------------
//
//	name: "zilliqa"
//	type: *zilliqa.Provider
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it returns an error.
func (c *Container) SafeGetZilliqa() (*zilliqa.Provider, error) {
	i, err := c.ctn.SafeGet("zilliqa")
	if err != nil {
		var eo *zilliqa.Provider
		return eo, err
	}
	o, ok := i.(*zilliqa.Provider)
	if !ok {
		return o, errors.New("could get 'zilliqa' because the object could not be cast to *zilliqa.Provider")
	}
	return o, nil
}

// GetZilliqa retrieves the "zilliqa" object from the main scope.
//
// ---------------------------------------------
//
//	name: "zilliqa"
//	type: *zilliqa.Provider
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// If the object can not be retrieved, it panics.
func (c *Container) GetZilliqa() *zilliqa.Provider {
	o, err := c.SafeGetZilliqa()
	if err != nil {
		panic(err)
	}
	return o
}

// UnscopedSafeGetZilliqa retrieves the "zilliqa" object from the main scope.
//
// ---------------------------------------------
//
//	name: "zilliqa"
//	type: *zilliqa.Provider
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it returns an error.
func (c *Container) UnscopedSafeGetZilliqa() (*zilliqa.Provider, error) {
	i, err := c.ctn.UnscopedSafeGet("zilliqa")
	if err != nil {
		var eo *zilliqa.Provider
		return eo, err
	}
	o, ok := i.(*zilliqa.Provider)
	if !ok {
		return o, errors.New("could get 'zilliqa' because the object could not be cast to *zilliqa.Provider")
	}
	return o, nil
}

// UnscopedGetZilliqa retrieves the "zilliqa" object from the main scope.
//
// ---------------------------------------------
//
//	name: "zilliqa"
//	type: *zilliqa.Provider
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// This method can be called even if main is a sub-scope of the container.
// If the object can not be retrieved, it panics.
func (c *Container) UnscopedGetZilliqa() *zilliqa.Provider {
	o, err := c.UnscopedSafeGetZilliqa()
	if err != nil {
		panic(err)
	}
	return o
}

// Zilliqa retrieves the "zilliqa" object from the main scope.
//
// ---------------------------------------------
//
//	name: "zilliqa"
//	type: *zilliqa.Provider
//	scope: "main"
//	build: func
//	params: nil
//	unshared: false
//	close: false
//
// ---------------------------------------------
//
// It tries to find the container with the C method and the given interface.
// If the container can be retrieved, it calls the GetZilliqa method.
// If the container can not be retrieved, it panics.
func Zilliqa(i interface{}) *zilliqa.Provider {
	return C(i).GetZilliqa()
}
