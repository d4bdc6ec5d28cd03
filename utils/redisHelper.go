package utils

import (
	"reflect"

	"github.com/zmeurelos/farm_backend/config"
)

/* generic functions */

func GetTypeName[T any]() string {
	var v T
	typeOfT := reflect.TypeOf(v)
	return typeOfT.Name()
}

/* Redis list cache */

// store list of a type, TypeList:$tenant_id
func StoreRedisList[T any](obj any, tenantId string) error {
	key := GetTypeName[T]() + "List:" + tenantId
	return config.SetRedisObject(key, &obj, 0)
}

// retrieve a cached list.
// returns nil when not cached
func RetrieveRedisList[T any](tenantId string) ([]*T, error) {
	key := GetTypeName[T]() + "List:" + tenantId

	var result []*T
	exists, err := config.GetRedisObject(key, &result)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return result, nil
}

// clear list, TypeList:$tenant_id
func RemoveRedisList[T any](tenantId string) error {
	var key string = GetTypeName[T]() + "List:" + tenantId
	return config.RemoveRedisKey(key)
}
