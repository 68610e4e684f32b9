package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// DefaultConfigMapKey is the data key read when none is given.
const DefaultConfigMapKey = configFileName

// NewK8sClientsetFromConfig is a package-level variable for creating a clientset from rest.Config.
// Exported to allow overriding in tests.
var NewK8sClientsetFromConfig = func(c *rest.Config) (kubernetes.Interface, error) {
	return kubernetes.NewForConfig(c)
}

// NewClientset builds a clientset from the default kubeconfig loading rules.
// An empty kubeContext uses the current context.
func NewClientset(kubeContext string) (kubernetes.Interface, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get REST config for context %q: %w", kubeContext, err)
	}
	restConfig.Timeout = 30 * time.Second

	clientset, err := NewK8sClientsetFromConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes clientset: %w", err)
	}
	return clientset, nil
}

// ParseConfigMapRef splits "namespace/name". A bare name uses the
// "default" namespace.
func ParseConfigMapRef(ref string) (namespace, name string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", fmt.Errorf("empty ConfigMap reference")
	}
	parts := strings.Split(ref, "/")
	switch len(parts) {
	case 1:
		return "default", parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid ConfigMap reference %q, want namespace/name", ref)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid ConfigMap reference %q, want namespace/name", ref)
	}
}

// LoadFromConfigMap reads configuration YAML from key in the named
// ConfigMap and layers it over the defaults.
func LoadFromConfigMap(ctx context.Context, client kubernetes.Interface, namespace, name, key string) (CapsectionConfig, error) {
	if key == "" {
		key = DefaultConfigMapKey
	}
	cm, err := client.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return CapsectionConfig{}, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}
	data, ok := cm.Data[key]
	if !ok {
		return CapsectionConfig{}, fmt.Errorf("ConfigMap %s/%s has no key %q", namespace, name, key)
	}
	return Parse(fmt.Sprintf("configmap %s/%s[%s]", namespace, name, key), []byte(data))
}
